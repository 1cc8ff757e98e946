package config

// Defaults match the app module of the Flutter Android project.
const (
	DefaultNamespace       = "com.furfrienddiary.app"
	DefaultCompileSDK      = 36
	DefaultMinSDK          = 24
	DefaultTargetSDK       = 36
	DefaultJavaVersion     = 11
	DefaultCredentialsFile = "key.properties"
	DefaultAppDir          = "app"
)

// DefaultProguardFiles are applied to the release build type in order.
var DefaultProguardFiles = []string{"proguard-android-optimize.txt", "proguard-rules.pro"}

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		Android: AndroidConfig{
			Namespace:             DefaultNamespace,
			ApplicationID:         DefaultNamespace,
			CompileSDK:            DefaultCompileSDK,
			MinSDK:                DefaultMinSDK,
			TargetSDK:             DefaultTargetSDK,
			JavaVersion:           DefaultJavaVersion,
			CoreLibraryDesugaring: true,
		},
		Signing: SigningConfig{
			CredentialsFile: DefaultCredentialsFile,
			AppDir:          DefaultAppDir,
		},
		Release: ReleaseConfig{
			MinifyEnabled:   true,
			ShrinkResources: true,
			ProguardFiles:   append([]string(nil), DefaultProguardFiles...),
		},
	}
}
