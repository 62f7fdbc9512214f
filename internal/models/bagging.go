package models

type Bagging struct {
	NEstimators int
	Trees       []*DecisionTree
}

func (bg *Bagging) Name() string { return "Bagging" }

func (bg *Bagging) Predict(X [][]float64) []int {
	return probaToClass(bg.PredictProba(X))
}

func (bg *Bagging) PredictProba(X [][]float64) []float64 {
	return averageProba(bg.Trees, X)
}

func (bg *Bagging) Validate(nFeatures int) error {
	return validateTrees("bagging", bg.Trees, nFeatures)
}
