package parser

import "strings"

// conclusionSeparators mark the end of premise collection; the first one
// found at parenthesis depth zero wins and everything after it is the
// conclusion. The match is a plain prefix match, not a word-boundary match.
var conclusionSeparators = []string{"therefore", "|-"}

// Statement is a raw input line partitioned into premise substrings and an
// optional conclusion substring. The substrings have not been parsed yet.
type Statement struct {
	Premises      []string
	Conclusion    string
	HasConclusion bool
}

// SplitStatement partitions a raw statement on commas and on the first
// "therefore" / "|-", considering only separators at parenthesis depth zero;
// separators nested inside parentheses do not split. Every produced substring
// is whitespace-trimmed. A trailing empty remainder after the last comma is
// dropped. Parenthesis depth that dips below zero, or that has not returned
// to zero when the statement ends without a conclusion separator, is an
// *UnbalancedError.
func SplitStatement(raw string) (*Statement, error) {
	stmt := &Statement{}
	depth := 0
	start := 0

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, &UnbalancedError{Offset: i}
			}
		}

		if depth != 0 {
			continue
		}

		if sep := separatorAt(raw, i); sep != "" {
			// "p, q, therefore r" has nothing between the last comma and
			// the separator; that empty remainder is not a premise.
			if part := strings.TrimSpace(raw[start:i]); part != "" {
				stmt.Premises = append(stmt.Premises, part)
			}
			stmt.Conclusion = strings.TrimSpace(raw[i+len(sep):])
			stmt.HasConclusion = true
			return stmt, nil
		}
		if raw[i] == ',' {
			stmt.Premises = append(stmt.Premises, strings.TrimSpace(raw[start:i]))
			start = i + 1
		}
	}

	if depth != 0 {
		return nil, &UnbalancedError{Offset: len(raw)}
	}

	if tail := strings.TrimSpace(raw[start:]); tail != "" {
		stmt.Premises = append(stmt.Premises, tail)
	}
	return stmt, nil
}

// separatorAt returns the conclusion separator starting at offset i, if any.
func separatorAt(raw string, i int) string {
	for _, sep := range conclusionSeparators {
		if strings.HasPrefix(raw[i:], sep) {
			return sep
		}
	}
	return ""
}
