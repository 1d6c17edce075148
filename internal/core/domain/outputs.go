package domain

// Output folder names within the repository root.
const (
	ThreeDDirName      = "3D_MODEL"
	PicturesDirName    = "PICTURES"
	DocsDirName        = "DOCUMENTATION"
	DefaultProdDirName = "PRODUCTION"
)

// TimestampFormat tags production runs (YYYYMMDD_HHMM).
const TimestampFormat = "20060102_1504"

// RenderView selects a board render orientation.
type RenderView string

// Available render views.
const (
	// RenderTop is the top-down view.
	RenderTop RenderView = "top"

	// RenderBottom is the bottom-up view.
	RenderBottom RenderView = "bottom"

	// RenderSide is the orthographic left view.
	RenderSide RenderView = "side"

	// RenderISO is the perspective isometric view.
	RenderISO RenderView = "iso"
)

// String returns the string representation.
func (v RenderView) String() string {
	return string(v)
}

// StandardRenderViews returns the views rendered on every run.
// The isometric view is opt-in via OutputPlan.ISO.
func StandardRenderViews() []RenderView {
	return []RenderView{RenderTop, RenderBottom, RenderSide}
}

// DefaultPrintLayers returns the layer set for the multi-page board
// prints PDF.
func DefaultPrintLayers() []string {
	return []string{
		"F.Cu", "B.Cu", "F.SilkS", "B.SilkS",
		"F.Mask", "B.Mask", "Edge.Cuts", "F.Fab", "B.Fab", "User.Drawings",
	}
}

// BOM export field configuration. Substitution fields (${...}) are
// resolved by kicad-cli.
const (
	BOMFields  = "Reference,Value,Footprint,${QUANTITY},Manufacturer,MPN,Datasheet,${DNP}"
	BOMLabels  = "Refs,Value,Footprint,Qty,Manufacturer,MPN,Datasheet,DNP"
	BOMGroupBy = "Value,Footprint,MPN"
)

// OutputPlan holds the options for one output-generation run.
type OutputPlan struct {
	// Root is the repository root containing the output folders.
	// Empty means the current directory.
	Root string

	// ProdDir is the production folder relative to Root.
	// Empty means DefaultProdDirName.
	ProdDir string

	// ISO also renders an isometric image.
	ISO bool

	// GLB also exports a .glb 3D model alongside the STEP file.
	GLB bool

	// ZipGerbers packages the gerber folder into a zip archive.
	ZipGerbers bool

	// Vendor, when set, runs KiKit fab for a vendor-ready package.
	Vendor Vendor

	// SkipDRC skips the design rule check report.
	SkipDRC bool

	// NoTimestamp suppresses the timestamp tag in the production
	// folder and gerber archive names.
	NoTimestamp bool
}

// WithDefaults fills unset fields.
func (p OutputPlan) WithDefaults() OutputPlan {
	if p.Root == "" {
		p.Root = "."
	}
	if p.ProdDir == "" {
		p.ProdDir = DefaultProdDirName
	}
	return p
}

// ProdFolder returns the production run folder name.
// Timestamped runs keep history; NoTimestamp yields a stable name.
func (p OutputPlan) ProdFolder(proj Project, stamp string) string {
	if p.NoTimestamp {
		return proj.Stem()
	}
	return stamp + "_" + proj.Stem()
}

// RunReport records what a run produced and where.
type RunReport struct {
	// RunID uniquely identifies the run.
	RunID string

	// Project is the project stem.
	Project string

	// Output locations.
	ThreeDDir     string
	PicturesDir   string
	DocsDir       string
	ProductionDir string

	// GerberZip is the gerber archive path, empty if not requested.
	GerberZip string

	// VendorZip is the KiKit vendor package path, empty if not requested.
	VendorZip string
}
