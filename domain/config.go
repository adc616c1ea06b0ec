package domain

// Config represents project config
type Config struct {
	S3Config

	Host string `env:"SCHEDSIM_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SCHEDSIM_PORT" envDefault:"8443"`

	EnableCPUProfiler bool `env:"ENABLE_CPU_PROFILER"`
	EnableS3          bool `env:"ENABLE_S3"`
	SeedSampleData    bool `env:"SEED_SAMPLE_DATA"`

	GraphiteHost string `env:"GRAPHITE_HOST"`

	MaxRequestPerMinute int `env:"MAX_REQ_PER_MINUTE" envDefault:"60"`

	CertFile    string `env:"CERT_FILE"`
	CertKeyFile string `env:"CERT_KEY_FILE"`
}

// S3Config represents config for the S3 report client
type S3Config struct {
	AccessKey string `env:"AWS_ACCESS_KEY"`
	SecretKey string `env:"AWS_SECRET_KEY"`
	Region    string `env:"AWS_S3_REGION"`
	Bucket    string `env:"AWS_S3_BUCKET"`
}
