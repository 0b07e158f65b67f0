package model

type Package struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	GuideCount int     `json:"guide_count"`
}

// PackageOption is a package annotated with its level, as offered on the
// upgrade page.
type PackageOption struct {
	Level      int     `json:"level"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	GuideCount int     `json:"guide_count"`
}
