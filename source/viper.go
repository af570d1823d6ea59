package source

import "github.com/spf13/viper"

type viperSource struct {
	v *viper.Viper
}

// FromViper adapts a viper instance as a Source. Viper lower-cases its keys;
// the binder falls back to lower-cased property names, so contracts bind
// against viper-loaded files without extra mapping.
func FromViper(v *viper.Viper) Source {
	return &viperSource{v: v}
}

func (s *viperSource) Lookup(key string) (any, bool) {
	if !s.v.IsSet(key) {
		return nil, false
	}
	return s.v.Get(key), true
}

func (s *viperSource) Keys() []string {
	settings := s.v.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	return keys
}
