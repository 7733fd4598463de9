package dobutsu

type dummyInferer struct {
	outputSize int
}

// NewDummyInferer returns an Inferer with a uniform policy and a value of 0.
func NewDummyInferer(actionSpace int) Inferer { return dummyInferer{outputSize: actionSpace} }

func (d dummyInferer) Infer(a []float32) (policy []float32, value float32, err error) {
	policy = make([]float32, d.outputSize)
	for i := range policy {
		policy[i] = 1 / float32(d.outputSize)
	}
	return policy, 0, nil
}

func (d dummyInferer) Close() error { return nil }
