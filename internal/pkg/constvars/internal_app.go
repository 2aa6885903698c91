package constvars

const (
	SessionKeyFormat = "session:%s"
)

const (
	MongoCollectionUsers = "users"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)
