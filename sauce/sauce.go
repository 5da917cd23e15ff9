// SAUCE (Standard Architecture for Universal Comment Extensions)
// metadata trailers, as appended to ANSI/ASCII art files.
//
// A SAUCE record is a fixed 128-byte block at the very end of a file,
// preceded by an optional comment block and an EOF marker (0x1A) so
// DOS-era viewers stop before the metadata. The renderer core stops at
// the marker on its own; this package is for callers that want the
// metadata itself, or want the trailer stripped before feeding bytes
// elsewhere.
//
// reference: https://www.acid.org/info/sauce/sauce.htm
package sauce

import (
	"bytes"
	"encoding/binary"
	"strings"
)

const (
	// RecordSize is the fixed size of a SAUCE record.
	RecordSize = 128
	// CommentLineSize is the size of one line in a comment block.
	CommentLineSize = 64

	// eofMarker terminates display data ahead of the trailer.
	eofMarker = 0x1A
)

var (
	recordID  = []byte("SAUCE")
	commentID = []byte("COMNT")
)

// Data/file types relevant to terminal art. SAUCE defines more (binary
// media, archives, ...) that a grid renderer has no use for.
const (
	DataTypeCharacter = 1

	FileTypeASCII      = 0
	FileTypeANSI       = 1
	FileTypeANSIMation = 2
)

// Record is a decoded SAUCE record.
type Record struct {
	Version string
	Title   string
	Author  string
	Group   string
	Date    string // CCYYMMDD

	FileSize uint32
	DataType uint8
	FileType uint8

	// Type-dependent numeric fields. For character data, TInfo1 is
	// the character width and TInfo2 the number of lines.
	TInfo1 uint16
	TInfo2 uint16
	TInfo3 uint16
	TInfo4 uint16

	CommentLines uint8
	Flags        uint8
	TInfoS       string // font name for character data
}

// Decode reads the SAUCE record off the tail of data. The second
// return is false when no record is present.
func Decode(data []byte) (*Record, bool) {
	if len(data) < RecordSize {
		return nil, false
	}
	rec := data[len(data)-RecordSize:]
	if !bytes.HasPrefix(rec, recordID) {
		return nil, false
	}

	return &Record{
		Version:      field(rec[5:7]),
		Title:        field(rec[7:42]),
		Author:       field(rec[42:62]),
		Group:        field(rec[62:82]),
		Date:         field(rec[82:90]),
		FileSize:     binary.LittleEndian.Uint32(rec[90:94]),
		DataType:     rec[94],
		FileType:     rec[95],
		TInfo1:       binary.LittleEndian.Uint16(rec[96:98]),
		TInfo2:       binary.LittleEndian.Uint16(rec[98:100]),
		TInfo3:       binary.LittleEndian.Uint16(rec[100:102]),
		TInfo4:       binary.LittleEndian.Uint16(rec[102:104]),
		CommentLines: rec[104],
		Flags:        rec[105],
		TInfoS:       field(rec[106:128]),
	}, true
}

// Width returns the character width declared for character data, or 0
// when the record declares none (callers fall back to their default).
func (r *Record) Width() int {
	if !r.isCharacter() {
		return 0
	}
	return int(r.TInfo1)
}

// Lines returns the line count declared for character data, or 0.
func (r *Record) Lines() int {
	if !r.isCharacter() {
		return 0
	}
	return int(r.TInfo2)
}

func (r *Record) isCharacter() bool {
	if r.DataType != DataTypeCharacter {
		return false
	}
	switch r.FileType {
	case FileTypeASCII, FileTypeANSI, FileTypeANSIMation:
		return true
	default:
		return false
	}
}

// Trim returns data with the SAUCE record, its comment block and the
// preceding EOF marker removed. Data without a record is returned
// unchanged. The result aliases data's backing array.
func Trim(data []byte) []byte {
	rec, ok := Decode(data)
	if !ok {
		return data
	}
	end := len(data) - RecordSize

	if n := int(rec.CommentLines); n > 0 {
		commentStart := end - (len(commentID) + CommentLineSize*n)
		if commentStart >= 0 &&
			bytes.HasPrefix(data[commentStart:], commentID) {
			end = commentStart
		}
	}

	if end > 0 && data[end-1] == eofMarker {
		end--
	}
	return data[:end]
}

// field decodes a space/NUL padded SAUCE text field.
func field(b []byte) string {
	return strings.TrimRight(string(b), " \x00")
}
