package uid

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

func Init(machineID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(machineID)
	})
	return err
}

func Generate() (int64, error) {
	if node == nil {
		return 0, errors.New("uid package not initialized")
	}
	return node.Generate().Int64(), nil
}
