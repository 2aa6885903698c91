package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App  App
		FHIR FHIR
		JWT  JWT
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		EndpointPrefix            string
		ReminderQueue             string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}

	FHIR struct {
		BaseUrl              string
		TimeoutInSeconds     int
		MaxConcurrentFetches int
		RequestsPerSecond    int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
