package questionbank

import (
	"fmt"
	"math/rand"
)

// Bank is a read-only catalog of problems grouped by topic.
type Bank struct {
	byTopic map[Topic][]Problem
	total   int
}

// newBank builds a Bank and stamps each problem with its bucket's topic.
func newBank(seed map[Topic][]Problem) *Bank {
	b := &Bank{byTopic: make(map[Topic][]Problem, len(seed))}
	for topic, problems := range seed {
		bucket := make([]Problem, len(problems))
		for i, p := range problems {
			p.Topic = topic
			bucket[i] = p
		}
		b.byTopic[topic] = bucket
		b.total += len(bucket)
	}
	return b
}

// Default returns the fixed question bank.
func Default() *Bank {
	return defaultBank
}

// ProblemsFor returns the ordered problems of a topic. The returned slice is
// a copy. Panics if topic is not one of Topics().
func (b *Bank) ProblemsFor(topic Topic) []Problem {
	bucket := b.mustBucket(topic)
	out := make([]Problem, len(bucket))
	copy(out, bucket)
	return out
}

// RandomProblem picks a problem of the topic uniformly at random, with
// replacement. Panics if topic is not one of Topics().
func (b *Bank) RandomProblem(topic Topic, rng *rand.Rand) Problem {
	bucket := b.mustBucket(topic)
	return bucket[rng.Intn(len(bucket))]
}

// Count returns the number of problems across all topics.
func (b *Bank) Count() int {
	return b.total
}

func (b *Bank) mustBucket(topic Topic) []Problem {
	bucket, ok := b.byTopic[topic]
	if !ok || len(bucket) == 0 {
		panic(fmt.Sprintf("questionbank: no problems for topic %q", topic))
	}
	return bucket
}

// Validate checks the catalog invariants: every topic has problems, every
// problem has a positive reward and a non-empty answer.
func (b *Bank) Validate() error {
	for _, topic := range Topics() {
		bucket := b.byTopic[topic]
		if len(bucket) == 0 {
			return fmt.Errorf("topic %q has no problems", topic)
		}
		for i, p := range bucket {
			if p.Points <= 0 {
				return fmt.Errorf("%s[%d]: points must be positive, got %d", topic, i, p.Points)
			}
			if p.Answer == "" {
				return fmt.Errorf("%s[%d]: empty answer", topic, i)
			}
			if p.Topic != topic {
				return fmt.Errorf("%s[%d]: topic mismatch %q", topic, i, p.Topic)
			}
		}
	}
	if len(b.byTopic) != len(Topics()) {
		return fmt.Errorf("bank has %d topic buckets, want %d", len(b.byTopic), len(Topics()))
	}
	return nil
}
