package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/retrofit/core"
)

// Key prefixes for different data types
const (
	tableMetaPrefix  = "tblmeta"
	tableEntryPrefix = "tblent"
	tableOrderPrefix = "tblord"
)

// makeTableMetaKey generates the metadata key for a named table.
func makeTableMetaKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", tableMetaPrefix, name))
}

// makeEntryKey generates the key for a word entry within a named table.
// Format: prefix:name:wordID
func makeEntryKey(name string, id core.ID) []byte {
	prefix := tableEntryPrefix + ":" + name + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeOrderKey generates the key holding the word ID stored at a table
// position. Positions are written BigEndian so prefix iteration yields
// them in table order.
// Format: prefix:name:position
func makeOrderKey(name string, position int) []byte {
	prefix := tableOrderPrefix + ":" + name + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(position))
	return buf
}

// makeTablePrefix generates the iteration prefix for all keys of one kind
// belonging to a named table.
func makeTablePrefix(kind, name string) []byte {
	return []byte(kind + ":" + name + ":")
}
