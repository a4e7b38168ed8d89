package structs

type EnviromentModel struct {
	Database database
	Workout  workout
	Log      log
}

type database struct {
	Path      string
	LogEnable int
}

type workout struct {
	DefaultName     string
	DefaultCalories int
}

type log struct {
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}
