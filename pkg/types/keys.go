package types

// Storage key layout. Documents and mappings live in separate prefix spaces;
// the theme preference uses a fixed global key.
const (
	DocumentKeyPrefix = "schedulenest_"
	MappingKeyPrefix  = "schedulenest-map_"
	DarkModeKey       = "schedulenest-darkmode"
)

// DocumentKey returns the storage key of the document owned by systemCode.
func DocumentKey(systemCode string) string {
	return DocumentKeyPrefix + systemCode
}

// MappingKey returns the storage key of the mapping for userCode.
func MappingKey(userCode string) string {
	return MappingKeyPrefix + userCode
}
