package filestore

import (
	"path"

	"github.com/agenturjaeger/immocrm/models"
)

// Category is one of the four fixed folder labels partitioning a property's
// remote files by purpose and sensitivity. The labels are German and
// case-sensitive; they are shared with the dashboard file browser and with
// folders that already exist on the NAS, so they must never change.
type Category string

const (
	CategoryImages    Category = "Bilder"
	CategoryDocuments Category = "Objektunterlagen"
	CategorySensitive Category = "Sensible Daten"
	CategoryContracts Category = "Vertragsunterlagen"
)

// Categories lists all valid category labels in their canonical order.
func Categories() []Category {
	return []Category{CategoryImages, CategoryDocuments, CategorySensitive, CategoryContracts}
}

// Valid reports whether c is one of the four known labels.
func (c Category) Valid() bool {
	switch c {
	case CategoryImages, CategoryDocuments, CategorySensitive, CategoryContracts:
		return true
	}
	return false
}

// Fallback literals for missing address components. These appear in folder
// names already created on the NAS, so they are part of the storage
// contract.
const (
	fallbackStreet = "Unbekannte Straße"
	fallbackCity   = "Unbekannte Stadt"
)

// FolderName derives the remote folder name of a property from its address:
// "{street} {houseNumber}, {zipCode} {city}". Missing street and city fall
// back to fixed literals, missing house number and zip code to the empty
// string. The result is deterministic: the same address always yields the
// byte-identical name, which is what makes the folder a shared path key
// across independent upload operations.
func FolderName(addr models.PropertyAddress) string {
	street := valueOr(addr.Street, fallbackStreet)
	houseNumber := valueOr(addr.HouseNumber, "")
	city := valueOr(addr.City, fallbackCity)

	location := city
	if zip := valueOr(addr.ZipCode, ""); zip != "" {
		location = zip + " " + city
	}

	return street + " " + houseNumber + ", " + location
}

// CategoryPath resolves the full remote directory of one property/category
// pair under the given base path.
//
// An invalid category is a programmer error, not a runtime condition, and
// panics.
func CategoryPath(basePath string, addr models.PropertyAddress, category Category) string {
	if !category.Valid() {
		panic("filestore: invalid category " + string(category))
	}

	return path.Join(basePath, FolderName(addr), string(category))
}

// PropertyPath resolves the remote root directory of a property under the
// given base path.
func PropertyPath(basePath string, addr models.PropertyAddress) string {
	return path.Join(basePath, FolderName(addr))
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
