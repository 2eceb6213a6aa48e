package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical errors.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnclosedLongString Code = 1003
	LexUnclosedComment    Code = 1004
	LexBadNumber          Code = 1005

	// Syntax errors.
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynLeftoverToken   Code = 2002
	SynEmptyInput      Code = 2003
	SynNoEOF           Code = 2004

	// Driver and I/O errors.
	IOInfo          Code = 3000
	IOLoadFileError Code = 3001
)

func (c Code) String() string {
	return fmt.Sprintf("LUN%04d", uint16(c))
}
