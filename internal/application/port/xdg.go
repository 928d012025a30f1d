package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	CacheDir() (string, error)

	// ProfileDataDir and ProfileCacheDir hold the web engine's persistent state.
	ProfileDataDir() (string, error)
	ProfileCacheDir() (string, error)
	FilterStoreDir() (string, error)
	DownloadDir() (string, error)
}
