package items

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlFixture = `
[[items]]
id = 1001
itemclass = 1
name = "Small Bag"
bagslots = 8
bagsize = 2

[[items]]
id = 2002
name = "Rusty Dagger"
weight = 300
augslottype = [1, 0, 0, 0, 0]

  [items.click]
  effect = 12
  type = 4

[instances.bag]
item_id = 1001
serial_number = 7

  [[instances.bag.contents]]
  slot = 3

    [instances.bag.contents.item]
    item_id = 2002
    charges = 1
`

const yamlFixture = `
items:
  - id: 2002
    name: Rusty Dagger
    idfile: IT10
    stackable: true
instances:
  dagger:
    item_id: 2002
    charges: 20
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFixtureTOML(t *testing.T) {
	fixture, err := LoadFixture(writeFile(t, "catalog.toml", tomlFixture))
	require.NoError(t, err)
	require.Len(t, fixture.Items, 2)

	catalog := fixture.Catalog()
	assert.Equal(t, 2, catalog.Len())

	bag, ok := catalog.Item(1001)
	require.True(t, ok)
	assert.True(t, bag.IsContainer())
	assert.Equal(t, 8, bag.SubSlots())

	dagger, ok := catalog.Item(2002)
	require.True(t, ok)
	assert.Equal(t, int32(300), dagger.Weight)
	assert.Equal(t, int32(12), dagger.Click.Effect)
	assert.Equal(t, uint8(1), dagger.AugSlotType[0])
	assert.Equal(t, ContainerCapacity, dagger.SubSlots())

	inst := fixture.Instances["bag"]
	sub := inst.Sub(3)
	require.NotNil(t, sub)
	assert.Equal(t, uint32(2002), sub.ItemID)
	assert.Nil(t, inst.Sub(4))
}

func TestLoadFixtureYAML(t *testing.T) {
	fixture, err := LoadFixture(writeFile(t, "catalog.yaml", yamlFixture))
	require.NoError(t, err)

	dagger, ok := fixture.Catalog().Item(2002)
	require.True(t, ok)
	assert.Equal(t, "IT10", dagger.IDFile)
	assert.True(t, dagger.Stackable)
	assert.Equal(t, int16(20), fixture.Instances["dagger"].Charges)
}

func TestLoadFixtureErrors(t *testing.T) {
	_, err := LoadFixture(writeFile(t, "catalog.json", "{}"))
	assert.Error(t, err)

	_, err = LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

type sliceSource []Data

func (s sliceSource) LoadItems(_ context.Context, fn func(*Data) error) error {
	for i := range s {
		if err := fn(&s[i]); err != nil {
			return err
		}
	}

	return nil
}

type failingSource struct{}

func (failingSource) LoadItems(context.Context, func(*Data) error) error {
	return errors.New("boom")
}

func TestMemoryCatalogLoad(t *testing.T) {
	catalog := NewMemoryCatalog()

	count, err := catalog.Load(context.Background(), sliceSource{{ID: 1}, {ID: 2}, {ID: 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, catalog.Len())

	_, ok := catalog.Item(4)
	assert.False(t, ok)

	_, err = catalog.Load(context.Background(), failingSource{})
	assert.Error(t, err)
}
