package shell

import (
	"embed"
)

//go:embed helptext/*.txt
var helptext embed.FS

var helpTopics = []string{"new", "guess", "set"}

func (sc *ShellController) usage() string {
	dat, err := helptext.ReadFile("helptext/usage.txt")
	if err != nil {
		return "Error loading helptext: " + err.Error()
	}
	return string(dat)
}

func usageTopic(topic string) string {
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil || topic == "usage" {
		return "There is no help text for the topic " + topic
	}
	return string(dat)
}
