package genetics

// matingReward computes the reward inputs for a parent-selection or
// crossover operator pick: pre is the best fitness among the parents,
// post is the best fitness among the offspring, normRange is the
// current population's fitness range (its scale for normalization),
// and diversitySignal is the offspring fitness spread.
func matingReward[T any](population Population[T], couple Couple[T], offspring []Chromosome[T]) (pre, post, normRange, diversitySignal float64) {
	pre = couple.A.Fitness()
	if f := couple.B.Fitness(); f > pre {
		pre = f
	}
	fitnesses := make([]float64, len(offspring))
	for i, c := range offspring {
		fitnesses[i] = c.ComputeFitness()
	}
	post = pre
	if len(fitnesses) > 0 {
		post = fitnesses[0]
		for _, f := range fitnesses[1:] {
			if f > post {
				post = f
			}
		}
	}
	normRange = valRange(population.Fitnesses())
	diversitySignal = stddev(fitnesses)
	return pre, post, normRange, diversitySignal
}

// survivorReward computes the reward inputs for a survivor-selection
// operator pick: pre/post are the population's mean fitness before and
// after replacement, normRange is the pre-selection population's
// fitness range, and diversitySignal is the change in fitness standard
// deviation (positive means the replacement increased diversity).
func survivorReward[T any](before, after Population[T]) (pre, post, normRange, diversitySignal float64) {
	preFitness := before.Fitnesses()
	postFitness := after.Fitnesses()
	pre = mean(preFitness)
	post = mean(postFitness)
	normRange = valRange(preFitness)
	diversitySignal = stddev(postFitness) - stddev(preFitness)
	return pre, post, normRange, diversitySignal
}
