package fix

import (
	"lintcore/internal/diag"
	"lintcore/internal/source"
)

// Insertion inserts content at at.
func Insertion(content string, at source.Location) diag.Fix {
	return diag.Fix{
		Op:          diag.FixInsertion,
		Content:     content,
		Location:    at,
		EndLocation: at,
	}
}

// Deletion removes the text between start and end.
func Deletion(start, end source.Location) diag.Fix {
	return diag.Fix{
		Op:          diag.FixDeletion,
		Location:    start,
		EndLocation: end,
	}
}

// Replacement replaces the text between start and end with content.
func Replacement(content string, start, end source.Location) diag.Fix {
	return diag.Fix{
		Op:          diag.FixReplacement,
		Content:     content,
		Location:    start,
		EndLocation: end,
	}
}
