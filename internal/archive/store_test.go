package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervadec/gites-ledger/internal/ledger"
)

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archives.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeArchive(t, `{
		"Phonsine": [
			["Dupont","28/01/2024","03/02/2024",1,6,2,50,300,"Airbnb"],
			["Martin","05/01/2024","08/01/2024","1","3","2","70","210","CB","extra"]
		],
		"Gree": []
	}`)

	store := NewStore(path)
	data, err := store.Load(context.Background())
	require.NoError(t, err)

	require.Contains(t, data, "Phonsine")
	require.Len(t, data["Phonsine"], 2)
	assert.Equal(t, ledger.Text("Dupont"), data["Phonsine"][0][ledger.ColGuest])
	assert.Equal(t, ledger.Number(300), data["Phonsine"][0][ledger.ColRevenue])
	// Column J of the second row was discarded by decoding.
	assert.Equal(t, ledger.Text("CB"), data["Phonsine"][1][ledger.ColPayment])
	assert.Empty(t, data["Gree"])
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load(context.Background())
	require.Error(t, err)

	var archiveErr *ledger.ArchiveError
	require.ErrorAs(t, err, &archiveErr)
	assert.Contains(t, archiveErr.Path, "nope.json")
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeArchive(t, `{"Phonsine": [`)

	store := NewStore(path)
	_, err := store.Load(context.Background())
	require.Error(t, err)

	var archiveErr *ledger.ArchiveError
	require.ErrorAs(t, err, &archiveErr)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoadCanceledContext(t *testing.T) {
	path := writeArchive(t, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore(path).Load(ctx)
	require.Error(t, err)
}
