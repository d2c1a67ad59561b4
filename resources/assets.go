package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	logoPath   = "logo/iqvision.svg"
	splashPath = "splash/loading_background.svg"
)

//go:embed logo/*.svg splash/*.svg
var assetFS embed.FS

var assetCache sync.Map

// Logo returns the application icon.
func Logo() (fyne.Resource, error) {
	return loadResource(logoPath)
}

// MustLogo returns the application icon or panics on error.
func MustLogo() fyne.Resource {
	return must(Logo())
}

// Splash returns the loading screen artwork.
func Splash() (fyne.Resource, error) {
	return loadResource(splashPath)
}

// MustSplash returns the loading screen artwork or panics on error.
func MustSplash() fyne.Resource {
	return must(Splash())
}

func must(resource fyne.Resource, err error) fyne.Resource {
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(path string) (fyne.Resource, error) {
	if cached, ok := assetCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := assetFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	assetCache.Store(path, resource)
	return resource, nil
}
