package models

// TypeRecord is one in-game item type as written by the dump pipeline.
type TypeRecord struct {
	TypeID   int64    `json:"typeID"`
	GroupID  int64    `json:"groupID"`
	TypeName string   `json:"typeName"`
	Volume   *float64 `json:"volume"` // null when the source column is NULL
	// Market is true iff the source row references a market group.
	Market bool `json:"market"`
	// Components is only set for allow-listed groups with at least one material.
	Components []ComponentEntry `json:"components,omitempty"`
}

// ComponentEntry is one material required to build a type.
type ComponentEntry struct {
	TypeID         int64 `json:"typeID"` // parent type
	MaterialTypeID int64 `json:"materialTypeID"`
	Quantity       int64 `json:"quantity"`
}

// NamedType is the value stored per name by the cache reader.
type NamedType struct {
	TypeID   int64  `json:"typeID"`
	GroupID  int64  `json:"groupID"`
	TypeName string `json:"typeName"`
}

// TypeTriple is what every type source can enumerate.
type TypeTriple struct {
	TypeID   int64
	GroupID  int64
	TypeName string
}
