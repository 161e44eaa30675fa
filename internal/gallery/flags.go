package gallery

// QueryFlag selects which parts of an extension's metadata the gallery
// includes in a query response. Values combine with bitwise OR.
type QueryFlag int

const (
	FlagNone                      QueryFlag = 0
	FlagIncludeVersions           QueryFlag = 1
	FlagIncludeFiles              QueryFlag = 2
	FlagIncludeCategoryAndTags    QueryFlag = 4
	FlagIncludeSharedAccounts     QueryFlag = 8
	FlagIncludeVersionProperties  QueryFlag = 16
	FlagExcludeNonValidated       QueryFlag = 32
	FlagIncludeInstallationTarget QueryFlag = 64
	FlagIncludeAssetURI           QueryFlag = 128
	FlagIncludeStatistics         QueryFlag = 256
	FlagIncludeLatestVersionOnly  QueryFlag = 512
	FlagUseFallbackAssetURI       QueryFlag = 1024
	FlagIncludeMetadata           QueryFlag = 2048
	FlagIncludeMinimalPayload     QueryFlag = 4096
	FlagIncludeLCIDs              QueryFlag = 8192
	FlagIncludeSharedOrgs         QueryFlag = 16384
	FlagAllAttributes             QueryFlag = 16863
	FlagUnpublished               QueryFlag = 32768
)

// EncodeFlags combines flag values into the single bitmask the gallery
// expects. An empty set encodes to 0. Values outside the recognized set are
// passed through as-is; the gallery is the authority on what they mean.
func EncodeFlags(flags []QueryFlag) QueryFlag {
	var mask QueryFlag
	for _, f := range flags {
		mask |= f
	}
	return mask
}
