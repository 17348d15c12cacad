package snowflake

import (
	"hash/fnv"
	"os"
	"strings"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *bwsnowflake.Node
)

// SetNodeID allows overriding the derived node ID (0-1023). Call once at bootstrap.
func SetNodeID(id int64) error {
	var err error
	once.Do(func() {}) // ensure we can set before init
	node, err = bwsnowflake.NewNode(id & 0x3FF)
	return err
}

func initNode() {
	if node != nil {
		return
	}
	// derive node from hostname hash (10 bits)
	host, _ := os.Hostname()
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	id := int64(h.Sum32()) & 0x3FF
	n, err := bwsnowflake.NewNode(id)
	if err != nil {
		// fallback to node 1
		n, _ = bwsnowflake.NewNode(1)
	}
	node = n
}

// Next returns a new snowflake id.
func Next() int64 {
	once.Do(initNode)
	return node.Generate().Int64()
}

// NextSessionID returns a new id in the base36 form used for guest sessions.
func NextSessionID() string {
	once.Do(initNode)
	return strings.ToLower(node.Generate().Base36())
}

// NextOrderID returns a new order number, uppercase base36 like the receipts display.
func NextOrderID() string {
	once.Do(initNode)
	return strings.ToUpper(node.Generate().Base36())
}
