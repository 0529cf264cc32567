package model

// Field is a logical source column.
type Field int

const (
	FieldNameRU Field = iota + 1
	FieldNameUK
	FieldDescriptionRU
	FieldDescriptionUK
	FieldPrice
	FieldCategory
	FieldBrand
	FieldCountry
	FieldProductCode
	FieldImages
	FieldCharacteristicName
	FieldCharacteristicUnit
	FieldCharacteristicValue
)

var fieldNames = map[Field]string{
	FieldNameRU:              "name_ru",
	FieldNameUK:              "name_uk",
	FieldDescriptionRU:       "description_ru",
	FieldDescriptionUK:       "description_uk",
	FieldPrice:               "price",
	FieldCategory:            "category",
	FieldBrand:               "brand",
	FieldCountry:             "country",
	FieldProductCode:         "product_code",
	FieldImages:              "images",
	FieldCharacteristicName:  "characteristic_name",
	FieldCharacteristicUnit:  "characteristic_unit",
	FieldCharacteristicValue: "characteristic_value",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "unknown"
}
