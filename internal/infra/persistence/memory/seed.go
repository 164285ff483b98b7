package memory

import (
	"time"

	"allserve/internal/domain/entity"
	"allserve/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Seed is a fixture file loaded into the store at startup. Keys follow the entity json tags.
type Seed struct {
	Users     []*entity.UserProfile `json:"users"`
	Providers []*entity.Provider    `json:"providers"`
	Bookings  []*entity.Booking     `json:"bookings"`
	Reviews   []*entity.Review      `json:"reviews"`
}

// Len returns the number of documents in the seed.
func (s *Seed) Len() int {
	return len(s.Users) + len(s.Providers) + len(s.Bookings) + len(s.Reviews)
}

// LoadSeed reads a YAML fixture file and puts every document into the store.
// Keys that match no entity field fail the load.
func LoadSeed(store *Store, path string) (*Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	var seed Seed
	if err := k.UnmarshalWithConf("", &seed, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &seed,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
			),
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode seed file %s", path)
	}

	for _, u := range seed.Users {
		if u.ID == "" {
			return nil, errors.New("seed user without id")
		}
		store.PutUser(u)
	}
	for _, p := range seed.Providers {
		if p.ID == "" {
			return nil, errors.New("seed provider without id")
		}
		store.PutProvider(p)
	}
	for _, b := range seed.Bookings {
		if b.ID == "" {
			b.ID = newID()
		}
		store.PutBooking(b)
	}
	for _, r := range seed.Reviews {
		if r.ID == "" {
			r.ID = newID()
		}
		store.PutReview(r)
	}

	return &seed, nil
}
