// Package buffer provides the read-only line buffer displayed by the viewer.
//
// A Buffer is loaded once from a file (or created empty) and is never
// edited afterwards. Lines are split on "\n" and "\r\n"; terminators are
// not part of the line text and a trailing newline does not produce an
// extra empty line.
//
// Basic usage:
//
//	buf, err := buffer.Load("notes.txt")
//	if err != nil {
//	    var le *buffer.LoadError
//	    if errors.As(err, &le) && le.NotFound() {
//	        // report missing file
//	    }
//	}
//	line, ok := buf.Line(0)
package buffer
