package data

// Passenger is the named-column view of one feature vector.
// Sex is 0 for female and 1 for male; Embarked is the port code the model was trained with.
type Passenger struct {
	Pclass   float64 `json:"pclass"`
	Sex      float64 `json:"sex"`
	Age      float64 `json:"age"`
	SibSp    float64 `json:"sibsp"`
	Parch    float64 `json:"parch"`
	Fare     float64 `json:"fare"`
	Embarked float64 `json:"embarked"`
}

// Prediction is the per-request outcome returned to the client.
type Prediction struct {
	Class int    `json:"prediction"`
	Label string `json:"result"`
}

const (
	LabelSurvived    = "Survived"
	LabelNotSurvived = "Did not survive"
)

// NewPrediction maps a class to its label. Any class other than 1 reads as not survived.
func NewPrediction(class int) Prediction {
	if class == 1 {
		return Prediction{Class: 1, Label: LabelSurvived}
	}
	return Prediction{Class: class, Label: LabelNotSurvived}
}
