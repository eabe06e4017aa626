package constants

// Sketch and join defaults. A sketch is 64*Chunks bits wide; the larger the
// chunk count, the tighter the Hamming-distance estimate, at linear cost in
// time and memory.
const (
	// DefaultNumChunks is the default sketch width in 64-bit chunks.
	DefaultNumChunks = 8

	// MaxNumChunks bounds the chunk sweep of the accuracy harness.
	MaxNumChunks = 100

	// DefaultRadius is the default normalized Hamming search radius.
	// Distances reported by the join live in sketch space: for Jaccard the
	// expectation is (1-J)/2, for Cosine it is theta/pi.
	DefaultRadius = 0.05

	// DefaultWindowSize is the default n-gram window for feature extraction.
	DefaultWindowSize = 1
)

// MaxDocuments caps the corpus size; pair keys pack two ids into one 64-bit
// word.
const MaxDocuments int64 = 1 << 32

// Weighting scheme names accepted by the cosine pipeline.
const (
	TFSchemeNone      = ""
	TFSchemeStandard  = "standard"
	TFSchemeSublinear = "sublinear"

	IDFSchemeNone     = ""
	IDFSchemeStandard = "standard"
	IDFSchemeSmooth   = "smooth"
)

// AccuracyRadii are the retrieval radii evaluated by the accuracy harness.
var AccuracyRadii = []float64{0.1, 0.2, 0.5}

// DefaultIncludePatterns selects document files when the input path is a
// directory.
var DefaultIncludePatterns = []string{"*.txt"}
