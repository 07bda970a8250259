package sorter

import (
	"fmt"
	"strings"
)

// ParseError reports an import statement that matched the extraction grammar
// but failed structural decomposition.
type ParseError struct {
	Statement string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in %q", e.Reason, e.Statement)
}

// Transform converts one raw import statement into an ImportRecord.
func (s *sorter) Transform(statement string) (*ImportRecord, error) {
	trimmed := strings.TrimSpace(statement)
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "import"))

	closing := strings.LastIndexAny(trimmed, `'"`)
	if closing < 0 {
		return nil, &ParseError{Statement: statement, Reason: "no path literal"}
	}
	quote := trimmed[closing]
	opening := strings.LastIndexByte(trimmed[:closing], quote)
	if opening < 0 {
		return nil, &ParseError{Statement: statement, Reason: "unterminated path literal"}
	}

	pathText := trimmed[opening : closing+1]
	if strings.Contains(trimmed[closing+1:], ";") {
		pathText += ";"
	}
	cleanedPath := strings.Trim(pathText, `'";`)

	record := &ImportRecord{
		Origin:          Classify(cleanedPath, s.config.PathPrefixes),
		PathText:        pathText,
		CleanedPathText: cleanedPath,
	}

	clause := strings.TrimSpace(trimmed[:opening])
	clause = trimFromKeyword(clause)
	if clause == "" {
		return record, nil
	}

	if lb := strings.IndexByte(clause, '{'); lb >= 0 {
		rb := strings.LastIndexByte(clause, '}')
		if rb < lb {
			return nil, &ParseError{Statement: statement, Reason: "unterminated named-binding block"}
		}
		namedRaw := clause[lb+1 : rb]
		record.HasMultilineNamedBindings = strings.ContainsRune(namedRaw, '\n')
		for _, token := range strings.Split(namedRaw, ",") {
			display := strings.TrimSpace(token)
			if display == "" {
				continue
			}
			record.NamedBindings = append(record.NamedBindings, BindingPair{
				Display: display,
				Compare: resolveAlias(display),
			})
		}
		clause = strings.TrimSpace(clause[:lb])
	}

	clause = strings.TrimSuffix(clause, ",")
	record.DefaultBinding = strings.TrimSpace(clause)
	record.CleanedDefaultBinding = resolveAlias(record.DefaultBinding)
	return record, nil
}

// Classify determines the origin of an import path. The path "react" is the
// framework import and a leading dot marks a relative path. A path whose
// first segment, or whole bare name, appears in the prefix list is an
// aliased module; everything else, including any path when the prefix list
// is empty, is a plain module.
func Classify(path string, prefixes []string) Origin {
	if path == "react" {
		return FrameworkOrigin
	}
	if strings.HasPrefix(path, ".") {
		return RelativePathOrigin
	}
	segment := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		segment = path[:i]
	}
	for _, prefix := range prefixes {
		if prefix == segment {
			return AliasedModuleOrigin
		}
	}
	return ModuleOrigin
}

// trimFromKeyword removes a trailing from keyword separating the binding
// clause from the path literal. The keyword only counts when preceded by
// whitespace or a closing brace, so a binding that merely ends in the
// letters "from" is left alone.
func trimFromKeyword(clause string) string {
	if clause == "from" {
		return ""
	}
	if strings.HasSuffix(clause, "from") {
		switch clause[len(clause)-5] {
		case ' ', '\t', '\n', '\r', '}':
			return strings.TrimSpace(clause[:len(clause)-4])
		}
	}
	return clause
}

// resolveAlias returns the effective binding name of a token, resolving
// "name as alias" to the alias.
func resolveAlias(token string) string {
	if i := strings.LastIndex(token, " as "); i >= 0 {
		return strings.TrimSpace(token[i+4:])
	}
	return token
}
