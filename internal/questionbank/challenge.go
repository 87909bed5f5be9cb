package questionbank

import "time"

// DailyChallenge is the suggested focus for one weekday. Topic is free text
// because weekend challenges ("Mixed", "Review") span several topics.
type DailyChallenge struct {
	Topic string
	Task  string
}

var dailyChallenges = map[time.Weekday]DailyChallenge{
	time.Monday:    {Topic: string(TopicAlgebra), Task: "Solve 3 algebra problems"},
	time.Tuesday:   {Topic: string(TopicGeometry), Task: "Complete 2 geometry exercises"},
	time.Wednesday: {Topic: string(TopicTrigonometry), Task: "Master trigonometric identities"},
	time.Thursday:  {Topic: string(TopicCalculus), Task: "Practice derivatives and integrals"},
	time.Friday:    {Topic: string(TopicStatistics), Task: "Solve probability problems"},
	time.Saturday:  {Topic: "Mixed", Task: "Challenge yourself with mixed problems"},
	time.Sunday:    {Topic: "Review", Task: "Review all math topics learned this week"},
}

// fallbackChallenge is shown for weekdays missing from the table.
var fallbackChallenge = DailyChallenge{Topic: "General", Task: "Practice math problems today!"}

// ChallengeFor returns the challenge for a weekday.
func ChallengeFor(day time.Weekday) DailyChallenge {
	if c, ok := dailyChallenges[day]; ok {
		return c
	}
	return fallbackChallenge
}

// PracticeTopic returns the bank topic the challenge maps to, if any.
func (c DailyChallenge) PracticeTopic() (Topic, bool) {
	t := Topic(c.Topic)
	return t, t.Valid()
}
