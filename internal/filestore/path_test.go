package filestore

import (
	"testing"

	"github.com/agenturjaeger/immocrm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fullAddress() models.PropertyAddress {
	return models.PropertyAddress{
		Street:      strPtr("Klingenweg"),
		HouseNumber: strPtr("15"),
		ZipCode:     strPtr("73312"),
		City:        strPtr("Geislingen an der Steige"),
	}
}

func TestFolderName_FullAddress(t *testing.T) {
	assert.Equal(t, "Klingenweg 15, 73312 Geislingen an der Steige", FolderName(fullAddress()))
}

func TestFolderName_AllMissing(t *testing.T) {
	name := FolderName(models.PropertyAddress{})
	assert.Equal(t, "Unbekannte Straße , Unbekannte Stadt", name)
}

func TestFolderName_EmptyStringsEqualNil(t *testing.T) {
	empty := models.PropertyAddress{
		Street:      strPtr(""),
		HouseNumber: strPtr(""),
		ZipCode:     strPtr(""),
		City:        strPtr(""),
	}
	assert.Equal(t, FolderName(models.PropertyAddress{}), FolderName(empty))
}

func TestFolderName_Deterministic(t *testing.T) {
	addr := fullAddress()
	first := FolderName(addr)
	second := FolderName(addr)
	assert.Equal(t, first, second)
}

func TestFolderName_MissingZip(t *testing.T) {
	addr := fullAddress()
	addr.ZipCode = nil
	assert.Equal(t, "Klingenweg 15, Geislingen an der Steige", FolderName(addr))
}

func TestFolderName_MissingHouseNumber(t *testing.T) {
	addr := fullAddress()
	addr.HouseNumber = nil
	assert.Equal(t, "Klingenweg , 73312 Geislingen an der Steige", FolderName(addr))
}

func TestCategoryPath_Bilder(t *testing.T) {
	p := CategoryPath("/volume1/Daten/Verkauf", fullAddress(), CategoryImages)
	assert.Equal(t, "/volume1/Daten/Verkauf/Klingenweg 15, 73312 Geislingen an der Steige/Bilder", p)
}

func TestCategoryPath_AllCategories(t *testing.T) {
	for _, cat := range Categories() {
		p := CategoryPath("/base", fullAddress(), cat)
		assert.Equal(t, "/base/Klingenweg 15, 73312 Geislingen an der Steige/"+string(cat), p)
	}
}

func TestCategoryPath_InvalidCategoryPanics(t *testing.T) {
	assert.Panics(t, func() {
		CategoryPath("/base", fullAddress(), Category("Sonstiges"))
	})
}

func TestCategory_Valid(t *testing.T) {
	require.Len(t, Categories(), 4)
	for _, cat := range Categories() {
		assert.True(t, cat.Valid())
	}
	assert.False(t, Category("bilder").Valid(), "labels are case-sensitive")
	assert.False(t, Category("").Valid())
}

func TestPropertyPath(t *testing.T) {
	p := PropertyPath("/base", fullAddress())
	assert.Equal(t, "/base/Klingenweg 15, 73312 Geislingen an der Steige", p)
}
