package benchmarks

// Suite groups the results of one benchmark run.
type Suite struct {
	Name    string
	Results []*Result

	// IntegrityChecked is set by suites that decrypt what they encrypted.
	IntegrityChecked bool
	IntegrityOK      bool
}

// Comparison pairs the textbook and library results of one operation.
type Comparison struct {
	Operation string
	Textbook  *Result
	Library   *Result
}

// Ratio is the textbook mean divided by the library mean. It is 0 when either
// side is missing or the library mean is 0.
func (c *Comparison) Ratio() float64 {
	if c.Textbook == nil || c.Library == nil || c.Library.Stats.Mean == 0 {
		return 0
	}
	return c.Textbook.Stats.Mean / c.Library.Stats.Mean
}
