package waste

// Class names emitted by the garbage classification model.
const (
	ClassBiodegradable    = "Biodegradable"
	ClassNonBiodegradable = "Non Biodegradable"
	ClassEWaste           = "Ewaste"
	ClassPharmaceutical   = "Pharmaceutical and Biomedical Waste"
	ClassHazardous        = "hazardous"
)

// ModelClasses is the model's output vocabulary in index order.
var ModelClasses = []string{
	ClassBiodegradable,
	ClassNonBiodegradable,
	ClassEWaste,
	ClassPharmaceutical,
	ClassHazardous,
}

var classTypes = map[string]Type{
	ClassBiodegradable:    TypeOrganic,
	ClassNonBiodegradable: TypePlastic,
	ClassEWaste:           TypeEWaste,
	ClassPharmaceutical:   TypeHazardous,
	ClassHazardous:        TypeHazardous,
}

// TypeForClass maps a model class to a category; unmapped classes are
// TypeOther.
func TypeForClass(class string) Type {
	if t, ok := classTypes[class]; ok {
		return t
	}
	return TypeOther
}

// FromPrediction builds the classification the endpoint returns for a model
// prediction.
func FromPrediction(class string, confidence float64, objects int) Classification {
	t := TypeForClass(class)
	return Classification{
		PredictedClass: class,
		WasteType:      t,
		Confidence:     confidence,
		Points:         ScaledPoints(t, confidence),
		ObjectCount:    objects,
	}
}
