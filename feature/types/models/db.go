package models

// InvType represents the 'invTypes' table of the static data export.
type InvType struct {
	TypeID        int64    `gorm:"column:typeID;primaryKey"`
	GroupID       int64    `gorm:"column:groupID"`
	TypeName      string   `gorm:"column:typeName"`
	Volume        *float64 `gorm:"column:volume"`
	MarketGroupID *int64   `gorm:"column:marketGroupID"`
}

// TableName overrides the table name.
func (InvType) TableName() string {
	return "invTypes"
}

// InvTypeColumns are the invTypes columns the pipeline reads.
var InvTypeColumns = []string{"typeID", "groupID", "typeName", "volume", "marketGroupID"}

// ToRecord converts the row to an output record without components.
func (t InvType) ToRecord() TypeRecord {
	return TypeRecord{
		TypeID:   t.TypeID,
		GroupID:  t.GroupID,
		TypeName: t.TypeName,
		Volume:   t.Volume,
		Market:   t.MarketGroupID != nil,
	}
}

// InvTypeMaterial represents the 'invTypeMaterials' table.
type InvTypeMaterial struct {
	TypeID         int64 `gorm:"column:typeID"`
	MaterialTypeID int64 `gorm:"column:materialTypeID"`
	Quantity       int64 `gorm:"column:quantity"`
}

// TableName overrides the table name.
func (InvTypeMaterial) TableName() string {
	return "invTypeMaterials"
}

// InvTypeMaterialColumns are the invTypeMaterials columns the pipeline reads.
var InvTypeMaterialColumns = []string{"typeID", "materialTypeID", "quantity"}

// ToComponent copies the row verbatim into a component entry.
func (m InvTypeMaterial) ToComponent() ComponentEntry {
	return ComponentEntry{
		TypeID:         m.TypeID,
		MaterialTypeID: m.MaterialTypeID,
		Quantity:       m.Quantity,
	}
}
