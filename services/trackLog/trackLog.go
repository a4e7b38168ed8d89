package trackLog

import (
	"fmt"

	"wolftracker/services/log"

	"github.com/sirupsen/logrus"
)

var logTracker *logrus.Entry

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("tracker")
	logTracker = temp.WithFields(logrus.Fields{"task": "track", "name": "log追蹤"})
}

func Info(message string, needWriteLog bool) {
	if needWriteLog {
		logTracker.Info(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog {
		logTracker.Error(message)
	}
	fmt.Println(message)
}
