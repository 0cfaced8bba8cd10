package config

// Config represents the complete configuration for the textscan application.
// It replaces ad-hoc settings dictionaries with named, typed fields that are
// validated once at load time. Values come from configuration files,
// environment variables, and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Camera capture settings
	Camera CameraConfig `mapstructure:"camera" yaml:"camera" json:"camera"`

	// OCR preprocessing settings
	OCR OCRConfig `mapstructure:"ocr" yaml:"ocr" json:"ocr"`

	// Recognition engine settings
	Tesseract TesseractConfig `mapstructure:"tesseract" yaml:"tesseract" json:"tesseract"`

	// Display / overlay settings
	Display DisplayConfig `mapstructure:"display" yaml:"display" json:"display"`

	// File loading and saving settings
	Files FilesConfig `mapstructure:"files" yaml:"files" json:"files"`
}

// CameraConfig contains frame-source settings.
type CameraConfig struct {
	Index     int  `mapstructure:"index" yaml:"index" json:"index"`
	Width     int  `mapstructure:"width" yaml:"width" json:"width"`
	Height    int  `mapstructure:"height" yaml:"height" json:"height"`
	FPS       int  `mapstructure:"fps" yaml:"fps" json:"fps"`
	Autofocus bool `mapstructure:"autofocus" yaml:"autofocus" json:"autofocus"`
}

// OCRConfig contains preprocessing settings.
type OCRConfig struct {
	DefaultMode       string `mapstructure:"default_mode" yaml:"default_mode" json:"default_mode"`
	DefaultThreshold  int    `mapstructure:"default_threshold" yaml:"default_threshold" json:"default_threshold"`
	NoiseKernelSize   int    `mapstructure:"noise_kernel_size" yaml:"noise_kernel_size" json:"noise_kernel_size"`
	AdaptiveBlockSize int    `mapstructure:"adaptive_block_size" yaml:"adaptive_block_size" json:"adaptive_block_size"`
	AdaptiveConstant  int    `mapstructure:"adaptive_constant" yaml:"adaptive_constant" json:"adaptive_constant"`
	MorphKernelSize   int    `mapstructure:"morph_kernel_size" yaml:"morph_kernel_size" json:"morph_kernel_size"`
	MorphIterations   int    `mapstructure:"morph_iterations" yaml:"morph_iterations" json:"morph_iterations"`
}

// TesseractConfig contains pass-through engine settings.
type TesseractConfig struct {
	Lang           string `mapstructure:"lang" yaml:"lang" json:"lang"`
	PSM            int    `mapstructure:"psm" yaml:"psm" json:"psm"`
	OEM            int    `mapstructure:"oem" yaml:"oem" json:"oem"`
	TessdataPrefix string `mapstructure:"tessdata_prefix" yaml:"tessdata_prefix" json:"tessdata_prefix"`
}

// DisplayConfig contains overlay rendering settings for the presentation layer.
type DisplayConfig struct {
	MaxWidth     int    `mapstructure:"max_width" yaml:"max_width" json:"max_width"`
	MaxHeight    int    `mapstructure:"max_height" yaml:"max_height" json:"max_height"`
	BoxColor     string `mapstructure:"box_color" yaml:"box_color" json:"box_color"`
	BoxThickness int    `mapstructure:"box_thickness" yaml:"box_thickness" json:"box_thickness"`
}

// FilesConfig contains file loading and saving settings.
type FilesConfig struct {
	MaxDimension int `mapstructure:"max_dimension" yaml:"max_dimension" json:"max_dimension"`
	JPEGQuality  int `mapstructure:"jpeg_quality" yaml:"jpeg_quality" json:"jpeg_quality"`
}
