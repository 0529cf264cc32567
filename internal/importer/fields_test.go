package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarcatalog/internal/model"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: "0"},
		{raw: "12500", want: "12500"},
		{raw: "12 500,50", want: "12500.5"},
		{raw: "12 500 грн", want: "12500"},
		{raw: "999.999", want: "1000"},
		{raw: "5000.", want: "5000"},
		{raw: "договірна", want: "0", wantErr: true},
		{raw: "-5", want: "0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestTechFields(t *testing.T) {
	power, efficiency, warranty := TechFields([]model.Characteristic{
		{Name: "Вага", Value: "25", Unit: "кг"},
		{Name: "Номінальна потужність", Value: "8", Unit: "кВт"},
		{Name: "Максимальна потужність", Value: "10", Unit: "кВт"},
		{Name: "КПД", Value: "97.6", Unit: "%"},
		{Name: "Гарантия", Value: "5 років"},
		{Name: "", Value: "x"},
	})
	assert.Equal(t, "8 кВт", power)
	assert.Equal(t, "97.6 %", efficiency)
	assert.Equal(t, "5 років", warranty)
}

func TestPickName(t *testing.T) {
	assert.Equal(t, "Інвертор", pickName("Інвертор", "Инвертор"))
	assert.Equal(t, "Инвертор", pickName("Інв", "Инвертор"))
	assert.Equal(t, "Інв", pickName("Інв", ""))
}

func TestSummary(t *testing.T) {
	var s Summary
	s.add(Outcome{Status: StatusCreated, CategoryCreated: true, BrandCreated: true, ImagesAttached: 3})
	s.add(Outcome{Status: StatusUpdated, ImagesAttached: 1})
	s.add(Outcome{Status: StatusSkipped, Reason: ReasonDuplicateName})
	s.add(Outcome{Status: StatusSkipped, Reason: ReasonShortName})
	s.add(Outcome{Status: StatusFailed, Reason: ReasonPersistenceFailure})

	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 1, s.CategoriesCreated)
	assert.Equal(t, 1, s.BrandsCreated)
	assert.Equal(t, 4, s.ImagesFetched)
	assert.Equal(t, map[Reason]int{ReasonDuplicateName: 1, ReasonShortName: 1}, s.SkippedBy())
}

func TestSeenNames(t *testing.T) {
	seen := NewSeenNames()
	_, ok := seen.Product("Панель")
	assert.False(t, ok)

	seen.AddProduct("Панель", [16]byte{1})
	id, ok := seen.Product("Панель")
	assert.True(t, ok)
	assert.Equal(t, byte(1), id[0])

	assert.True(t, seen.MarkCategory("Інвертори"))
	assert.False(t, seen.MarkCategory("Інвертори"))
	assert.True(t, seen.MarkBrand("Deye"))
	assert.False(t, seen.MarkBrand("Deye"))
	assert.Equal(t, 1, seen.Len())
}
