package property

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed properties.yaml
var tableYAML []byte

// Address is the wire address of a property.
type Address struct {
	Siid int `yaml:"siid"`
	Piid int `yaml:"piid"`
}

func (a Address) String() string { return fmt.Sprintf("%d.%d", a.Siid, a.Piid) }

// ActionAddress is the wire address of an action.
type ActionAddress struct {
	Siid int `yaml:"siid"`
	Aiid int `yaml:"aiid"`
}

func (a ActionAddress) String() string { return fmt.Sprintf("%d.%d", a.Siid, a.Aiid) }

type propertyDef struct {
	Address       `yaml:",inline"`
	NonReconciled bool `yaml:"non_reconciled"`
}

type tableFile struct {
	Properties map[string]propertyDef   `yaml:"properties"`
	Actions    map[string]ActionAddress `yaml:"actions"`
}

// Table maps property and action IDs to wire addresses.
type Table struct {
	props   [numIDs]propertyDef
	byAddr  map[Address]ID
	actions [numActions]ActionAddress
}

var defaultTable = mustLoadTable(tableYAML)

func mustLoadTable(data []byte) *Table {
	t, err := LoadTable(data)
	if err != nil {
		panic(fmt.Sprintf("property: embedded table: %v", err))
	}
	return t
}

// LoadTable parses a property table. Every known ID and action must be
// present and no two properties may share an address.
func LoadTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse property table: %w", err)
	}

	t := &Table{byAddr: make(map[Address]ID, len(f.Properties))}
	for id := Invalid + 1; id < numIDs; id++ {
		def, ok := f.Properties[idNames[id]]
		if !ok {
			return nil, fmt.Errorf("property %s missing from table", idNames[id])
		}
		if other, dup := t.byAddr[def.Address]; dup {
			return nil, fmt.Errorf("property %s shares address %s with %s", idNames[id], def.Address, other)
		}
		t.props[id] = def
		t.byAddr[def.Address] = id
	}
	for a := NoAction + 1; a < numActions; a++ {
		addr, ok := f.Actions[actionNames[a]]
		if !ok {
			return nil, fmt.Errorf("action %s missing from table", actionNames[a])
		}
		t.actions[a] = addr
	}
	return t, nil
}

// DefaultTable returns the embedded property table.
func DefaultTable() *Table { return defaultTable }

// Address returns the wire address of a property.
func (t *Table) Address(id ID) (Address, bool) {
	if !id.Valid() {
		return Address{}, false
	}
	return t.props[id].Address, true
}

// Lookup resolves a wire address to a property ID.
func (t *Table) Lookup(siid, piid int) (ID, bool) {
	id, ok := t.byAddr[Address{Siid: siid, Piid: piid}]
	return id, ok
}

// NonReconciled reports whether the property bypasses the write ledger.
func (t *Table) NonReconciled(id ID) bool {
	return id.Valid() && t.props[id].NonReconciled
}

// Action returns the wire address of an action.
func (t *Table) Action(a ActionID) (ActionAddress, bool) {
	if a <= NoAction || a >= numActions {
		return ActionAddress{}, false
	}
	return t.actions[a], true
}

// AddressOf returns the wire address of a property in the default table.
func AddressOf(id ID) Address {
	addr, _ := defaultTable.Address(id)
	return addr
}

// IsNonReconciled reports whether the property bypasses the write ledger in
// the default table.
func IsNonReconciled(id ID) bool { return defaultTable.NonReconciled(id) }
