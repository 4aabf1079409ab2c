package options

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vybor/internal/catalog"
)

func deliveryTime() catalog.Directory {
	return catalog.Directory{
		Group: "core",
		Name:  "delivery_time",
		Kind:  catalog.KindEnum,
		Items: []catalog.Item{
			{Code: "OneDay", Label: "In 24 hours"},
			{Code: "TwoDays", Label: "In 2 days"},
			{Code: "ThreeDays", Label: "In 3 days"},
			{Code: "OneWeekOrMore"}, // метки нет — фолбэк на код
		},
	}
}

func TestBuild_LabelsAndSelection(t *testing.T) {
	got, err := Build(deliveryTime(), "ThreeDays")
	require.NoError(t, err)

	want := []Option{
		{Value: "OneDay", Label: "In 24 hours"},
		{Value: "TwoDays", Label: "In 2 days"},
		{Value: "ThreeDays", Label: "In 3 days", Selected: true},
		{Value: "OneWeekOrMore", Label: "OneWeekOrMore"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_NoSelection(t *testing.T) {
	got, err := Build(deliveryTime(), "")
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, o := range got {
		assert.False(t, o.Selected)
	}
}

func TestBuild_UnknownSelectedMarksNothing(t *testing.T) {
	got, err := Build(deliveryTime(), "Never")
	require.NoError(t, err)
	for _, o := range got {
		assert.False(t, o.Selected)
	}
}

func TestBuild_OnePerMemberInDeclarationOrder(t *testing.T) {
	dir := deliveryTime()
	got, err := Build(dir, "")
	require.NoError(t, err)
	require.Len(t, got, len(dir.Items))
	for i, it := range dir.Items {
		assert.Equal(t, it.Code, got[i].Value)
	}
}

func TestBuild_TableIsNotEnum(t *testing.T) {
	dir := catalog.Directory{
		Group: "core", Name: "currencies", Kind: catalog.KindTable,
		Items: []catalog.Item{{Code: "RUB"}},
	}
	got, err := Build(dir, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnum))
	assert.Nil(t, got, "никакого частичного результата")
}

func TestBuild_EmptyEnum(t *testing.T) {
	got, err := Build(catalog.Directory{Group: "g", Name: "e", Kind: catalog.KindEnum}, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestForName(t *testing.T) {
	reg := catalog.NewRegistry(map[string]catalog.Directory{
		"core.delivery_time": deliveryTime(),
		"core.currencies": {Group: "core", Name: "currencies", Kind: catalog.KindTable,
			Items: []catalog.Item{{Code: "RUB"}}},
	})

	got, err := ForName(reg, "core", "delivery_time", "TwoDays")
	require.NoError(t, err)
	assert.True(t, got[1].Selected)

	_, err = ForName(reg, "core", "currencies", "")
	assert.True(t, errors.Is(err, ErrNotEnum))

	_, err = ForName(reg, "core", "nope", "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotEnum), "неизвестное имя — не ErrNotEnum")
}
