package errors

// Error message constants for the eis application
const (
	// File processing errors
	ErrMsgFailedToReadFile    = "failed to read file"
	ErrMsgFailedToWriteFile   = "failed to write file"
	ErrMsgFailedToSortImports = "failed to sort imports"
	ErrMsgFailedToReadStdin   = "failed to read standard input"

	// Directory processing errors
	ErrMsgFailedToCheckPath      = "failed to check path"
	ErrMsgFailedToFindFiles      = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess   = "%d files failed to process"
	ErrMsgFilesNeedReordering    = "%d files have unordered imports"
	ErrMsgFailedToGetWorkingDir  = "failed to get current working directory"
	ErrMsgFailedToWatchDirectory = "failed to watch directory"

	// Configuration errors
	ErrMsgFailedToLoadConfig    = "failed to load configuration"
	ErrMsgFailedToParseConfig   = "failed to parse configuration"
	ErrMsgFailedToEncodeConfig  = "failed to encode configuration"
	ErrMsgConfigAlreadyExists   = "configuration file already exists: %s"
	ErrMsgInvalidClassification = "invalid classification name"
	ErrMsgInvalidSortPolicy     = "invalid sort policy"

	// Info/warning messages
	WarnMsgProcessingDirWithoutWrite = "Warning: Processing directory without --write flag. No files will be modified."
	InfoMsgUseWriteFlag              = "Use --write flag to modify files or specify a single file for stdout output."
	InfoMsgNoSourceFilesFound        = "No JavaScript or TypeScript files found in directory: %s"
	InfoMsgFoundSourceFiles          = "Found %d source files in directory: %s"
	InfoMsgNoImportsFound            = "No import statements found in %s"
	InfoMsgProcessedFiles            = "Processed: %s"
	InfoMsgUnorderedImports          = "Unordered imports: %s"
	InfoMsgErrorProcessing           = "Error processing %s: %v"
	InfoMsgProcessedCount            = "\nProcessed %d files successfully"
	InfoMsgErrorCount                = ", %d files had errors"
	InfoMsgWatchingPath              = "Watching %s for changes"
	InfoMsgConfigCreated             = "Created %s"
)
