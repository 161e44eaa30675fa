package gallery

// GetExtensionInfo queries the gallery and returns the single extension
// matching the publisher/name pair. The filter criterion pins the pair
// uniquely, so only the first result is ever consulted.
func (c *Client) GetExtensionInfo(publisher, name string, flags ...QueryFlag) (*ExtensionInfo, error) {
	results, err := c.Query(publisher, name, flags...)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 || len(results[0].Extensions) == 0 {
		return nil, newExtensionNotFound(publisher, name)
	}

	return &results[0].Extensions[0], nil
}

// GetExtensionVersion resolves one version entry of an extension. An empty
// version string means latest, which is the first entry of the gallery's
// newest-first list. A non-empty version must match an entry's version string
// exactly; no semver comparison is performed.
func (c *Client) GetExtensionVersion(publisher, name, version string) (*ExtensionVersion, error) {
	info, err := c.GetExtensionInfo(publisher, name, FlagIncludeVersions, FlagIncludeFiles)
	if err != nil {
		return nil, err
	}

	if len(info.Versions) == 0 {
		return nil, newVersionNotFound(info.UniqueID(), version)
	}

	if version == "" {
		return &info.Versions[0], nil
	}

	for i := range info.Versions {
		if info.Versions[i].Version == version {
			return &info.Versions[i], nil
		}
	}

	return nil, newVersionNotFound(info.UniqueID(), version)
}

// GetLatestVersion returns the version string of the extension's latest
// release.
func (c *Client) GetLatestVersion(publisher, name string) (string, error) {
	latest, err := c.GetExtensionVersion(publisher, name, "")
	if err != nil {
		return "", err
	}
	return latest.Version, nil
}

// GetVsixDownloadURL returns the source URL of the latest version's VSIX
// package asset.
func (c *Client) GetVsixDownloadURL(publisher, name string) (string, error) {
	latest, err := c.GetExtensionVersion(publisher, name, "")
	if err != nil {
		return "", err
	}

	url, err := vsixURL(latest, publisher, name)
	if err != nil {
		return "", err
	}
	return url, nil
}

func vsixURL(version *ExtensionVersion, publisher, name string) (string, error) {
	for _, file := range version.Files {
		if file.AssetType == VsixAssetType {
			return file.Source, nil
		}
	}
	return "", newVsixFileNotFound(publisher+"."+name, version.Version)
}
