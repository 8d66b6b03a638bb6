package mc

import (
	"sync"

	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
)

var (
	tablesOnce sync.Once
	tables     *registry.Tables
)

// dispatchTables freezes the registry on first use. Tier packages register
// from init, so every registration has happened by then.
func dispatchTables() *registry.Tables {
	tablesOnce.Do(func() {
		tables = registry.Global.Freeze()
	})

	return tables
}
