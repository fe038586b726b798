package export

import "github.com/san-kum/asciify/internal/ascii"

// Text returns the UTF-8 bytes of art exactly as they are, newlines included.
func Text(art ascii.Art) []byte {
	return []byte(art)
}
