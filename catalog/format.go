package catalog

// Format is an instruction format class.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_2 = Format(2) // 2
	FORMAT_3 = Format(3) // 3/4
)

// Length returns the encoded length of an instruction of this format, in bytes.
func (format Format) Length() int {
	if format == FORMAT_2 {
		return 2
	}

	return 3
}
