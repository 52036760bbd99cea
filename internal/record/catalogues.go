package record

// Assessment type codes. The label map drives display and export; the
// code is what gets persisted.
const (
	AssessmentCase = "case"
	AssessmentCBD  = "cbd"
	AssessmentCEX  = "cex"
	AssessmentDOPS = "dops"
	AssessmentACAT = "acat"
	AssessmentSLE  = "sle"
)

// AssessmentOrder is the display order of assessment types.
var AssessmentOrder = []string{
	AssessmentCase, AssessmentCBD, AssessmentCEX,
	AssessmentDOPS, AssessmentACAT, AssessmentSLE,
}

// AssessmentLabels maps type codes to their full labels.
var AssessmentLabels = map[string]string{
	AssessmentCase: "Clinical Case",
	AssessmentCBD:  "CBD - Case-Based Discussion",
	AssessmentCEX:  "CEX - Clinical Evaluation Exercise",
	AssessmentDOPS: "DOPS - Direct Observation of Procedural Skills",
	AssessmentACAT: "ACAT - Acute Care Assessment Tool",
	AssessmentSLE:  "Other SLE",
}

// AssessmentLabel resolves a type code, falling back to the plain
// clinical case label for unknown or empty codes.
func AssessmentLabel(code string) string {
	if label, ok := AssessmentLabels[code]; ok {
		return label
	}
	return AssessmentLabels[AssessmentCase]
}

var UrgencyTypes = []string{
	"Elective",
	"Urgent",
	"Emergency",
	"Immediate/Resus",
}

var TimesOfDay = []string{
	"Morning",
	"Afternoon",
	"Evening",
	"Night",
}

var AnaestheticTypes = []string{
	"GA - ETT (LMA/SGA if failed)",
	"GA - LMA/SGA",
	"GA - Face mask",
	"TIVA - ETT",
	"TIVA - LMA/SGA",
	"Spinal",
	"Epidural",
	"CSE",
	"Regional block (single shot)",
	"Regional block (catheter)",
	"Regional + sedation",
	"Regional + GA",
	"Local anaesthetic infiltration",
	"Sedation (conscious)",
	"Sedation (deep)",
	"MAC",
	"Awake fibreoptic intubation",
	"Other",
}

var SupervisionLevels = []string{
	"Observed (Level 1)",
	"Supervised - Hands on (Level 2)",
	"Supervised - Distant (Level 3a)",
	"Supervised - Immediately available (Level 3b)",
	"Autonomous (Level 4)",
}

var OperationTypes = []string{
	"General Surgery",
	"Orthopaedic",
	"Vascular",
	"Urology",
	"Gynaecology",
	"Obstetric",
	"ENT",
	"Maxillofacial",
	"Plastics",
	"Neurosurgery",
	"Cardiac",
	"Thoracic",
	"Paediatric",
	"Other",
}

var CaseTypes = []string{
	"Emergency - Trauma",
	"Emergency - Non-trauma",
	"Elective - Major",
	"Elective - Minor/Intermediate",
	"Obstetric",
	"Paediatric",
	"ICU/Critical Care",
	"Pain/Regional",
}

var CommonProcedures = []string{
	"General Anaesthesia",
	"RSI",
	"Spinal",
	"Epidural",
	"Combined Spinal-Epidural",
	"Nerve Block - Upper Limb",
	"Nerve Block - Lower Limb",
	"Airway Management",
	"Failed Intubation",
	"Arterial Line",
	"Central Line",
	"Pre-operative Assessment",
	"Post-op Review",
}

// EPAOptions is the curriculum tag catalogue records can be linked to.
var EPAOptions = []string{
	"EPA1 - Initial Assessment & Management",
	"EPA2 - Pre-operative Assessment",
	"EPA3 - Safe Conduct of Anaesthesia",
	"EPA4 - Peri-operative Care",
	"EPA5 - Managing Acute Pain",
	"EPA6 - Resuscitation & Transfer",
	"EPA7 - General & Communication Skills",
}

var AgeCategories = []string{
	"Neonate (0-28d)",
	"Infant (1m-1y)",
	"Child (1-12y)",
	"Adolescent (12-18y)",
	"Adult (18-65y)",
	"Elderly (65+y)",
}

var ASAGrades = []string{"1", "2", "3", "4", "5", "6", "1E", "2E", "3E", "4E", "5E"}

// CBDAreas is the fixed area order for case-based discussion ratings.
// Export iterates this order, never map order.
var CBDAreas = []string{
	"Clinical Assessment",
	"Investigation & Referral",
	"Treatment & Management",
	"Clinical Judgement",
	"Communication",
	"Professionalism",
	"Organisation & Planning",
}

// CBDScale is the ordinal rating scale for CBD areas.
var CBDScale = []string{
	"Below expectations",
	"Meets expectations",
	"Above expectations",
	"Excellent",
}

// CEXAreas is the fixed area order for clinical evaluation exercise ratings.
var CEXAreas = []string{
	"History Taking",
	"Physical Examination",
	"Communication Skills",
	"Clinical Judgement",
	"Professionalism",
	"Organisation & Efficiency",
	"Overall Clinical Care",
}

// CEXScale is the ordinal rating scale for CEX areas.
var CEXScale = []string{
	"1 - Below expectations",
	"2 - Borderline",
	"3 - Meets expectations",
	"4 - Above expectations",
	"5 - Excellent",
}
