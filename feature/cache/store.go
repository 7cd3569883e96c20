package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"type-extractor/feature/types"
	"type-extractor/feature/types/models"

	"gopkg.in/yaml.v3"
)

// ClientStore reads the type table a game client ships with.
type ClientStore struct {
	path string
}

// NewClientStore opens the type table at typesFile under clientPath.
// It fails with types.ErrSourceUnavailable when the client path does not exist.
func NewClientStore(clientPath, typesFile string) (*ClientStore, error) {
	info, err := os.Stat(clientPath)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client path %s: %w", types.ErrSourceUnavailable, clientPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: client path %s is not a directory", types.ErrSourceUnavailable, clientPath)
	}
	return &ClientStore{path: filepath.Join(clientPath, typesFile)}, nil
}

// storedType is one entry of typeIDs.yaml. Unused attributes are ignored.
type storedType struct {
	GroupID int64         `yaml:"groupID"`
	Name    localizedName `yaml:"name"`
}

// localizedName accepts either a plain string or a language map.
type localizedName string

func (n *localizedName) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*n = localizedName(s)
		return nil
	case yaml.MappingNode:
		var names map[string]string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*n = localizedName(names["en"])
		return nil
	default:
		return fmt.Errorf("line %d: unexpected name node", value.Line)
	}
}

// EachType decodes the table and calls fn in ascending typeID order.
func (s *ClientStore) EachType(ctx context.Context, fn func(models.TypeTriple) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open type table: %w", types.ErrSourceUnavailable, err)
	}
	defer f.Close()

	var table map[int64]storedType
	if err := yaml.NewDecoder(f).Decode(&table); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %w", types.ErrSourceUnavailable, s.path, err)
	}

	ids := make([]int64, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry := table[id]
		if err := fn(models.TypeTriple{TypeID: id, GroupID: entry.GroupID, TypeName: string(entry.Name)}); err != nil {
			return err
		}
	}
	return nil
}
