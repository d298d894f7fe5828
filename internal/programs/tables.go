package programs

// Теги оборудования
const (
	EquipmentBarbell    = "barbell"
	EquipmentDumbbell   = "dumbbell"
	EquipmentKettlebell = "kettlebell"
	EquipmentBench      = "bench"
	EquipmentRack       = "rack"
	EquipmentPullupBar  = "pullup_bar"
	EquipmentCable      = "cable"
	EquipmentMachine    = "machine"
	EquipmentBands      = "bands"
	EquipmentBodyweight = "bodyweight"
)

// Зоны травм
const (
	InjuryKnee     = "knee"
	InjuryBack     = "back"
	InjuryShoulder = "shoulder"
)

// defaultRequirement требования для упражнения, которого нет в таблице
var defaultRequirement = []string{EquipmentDumbbell, EquipmentBodyweight}

// equipmentRequirements оборудование, любого из которого достаточно для упражнения
var equipmentRequirements = map[string][]string{
	"squat":                   {EquipmentBarbell},
	"front squat":             {EquipmentBarbell},
	"bench press":             {EquipmentBarbell},
	"pause bench press":       {EquipmentBarbell},
	"incline bench press":     {EquipmentBarbell},
	"close-grip bench press":  {EquipmentBarbell},
	"deadlift":                {EquipmentBarbell},
	"deficit deadlift":        {EquipmentBarbell},
	"romanian deadlift":       {EquipmentBarbell, EquipmentDumbbell},
	"overhead press":          {EquipmentBarbell},
	"barbell row":             {EquipmentBarbell},
	"hip thrust":              {EquipmentBarbell},
	"pull-ups":                {EquipmentPullupBar},
	"chin-ups":                {EquipmentPullupBar},
	"hanging leg raise":       {EquipmentPullupBar},
	"dumbbell row":            {EquipmentDumbbell},
	"dumbbell bench press":    {EquipmentDumbbell},
	"incline dumbbell press":  {EquipmentDumbbell},
	"dumbbell shoulder press": {EquipmentDumbbell},
	"hammer curl":             {EquipmentDumbbell},
	"walking lunges":          {EquipmentDumbbell},
	"bulgarian split squat":   {EquipmentDumbbell},
	"lateral raise":           {EquipmentDumbbell, EquipmentCable},
	"biceps curl":             {EquipmentDumbbell, EquipmentBarbell},
	"goblet squat":            {EquipmentDumbbell, EquipmentKettlebell},
	"kettlebell swing":        {EquipmentKettlebell},
	"leg press":               {EquipmentMachine},
	"leg extension":           {EquipmentMachine},
	"leg curl":                {EquipmentMachine},
	"back extension":          {EquipmentMachine},
	"calf raise":              {EquipmentMachine, EquipmentDumbbell},
	"lat pulldown":            {EquipmentCable, EquipmentMachine},
	"seated cable row":        {EquipmentCable},
	"cable fly":               {EquipmentCable},
	"triceps pushdown":        {EquipmentCable},
	"face pull":               {EquipmentCable, EquipmentBands},
	"band pull-apart":         {EquipmentBands},
	"push-ups":                {EquipmentBodyweight},
	"pike push-ups":           {EquipmentBodyweight},
	"dips":                    {EquipmentBodyweight},
	"inverted row":            {EquipmentBodyweight},
	"bodyweight squat":        {EquipmentBodyweight},
	"reverse lunges":          {EquipmentBodyweight},
	"glute bridge":            {EquipmentBodyweight},
	"single-leg calf raise":   {EquipmentBodyweight},
	"lying leg raise":         {EquipmentBodyweight},
	"superman":                {EquipmentBodyweight},
	"plank":                   {EquipmentBodyweight},
}

// Alternative замена упражнения. Пустой Volume - сохраняется объём исходного упражнения.
type Alternative struct {
	Name   string
	Volume string
}

// exerciseAlternatives замены в порядке предпочтения
var exerciseAlternatives = map[string][]Alternative{
	"squat":                   {{Name: "Goblet Squat", Volume: "4x8-10"}, {Name: "Bodyweight Squat", Volume: "4x15-20"}, {Name: "Glute Bridge", Volume: "4x15"}},
	"front squat":             {{Name: "Goblet Squat"}, {Name: "Bodyweight Squat", Volume: "3x15-20"}},
	"bench press":             {{Name: "Dumbbell Bench Press"}, {Name: "Push-ups", Volume: "4x12-15"}},
	"pause bench press":       {{Name: "Dumbbell Bench Press"}, {Name: "Push-ups", Volume: "4x12-15"}},
	"incline bench press":     {{Name: "Incline Dumbbell Press"}, {Name: "Push-ups", Volume: "3x12-15"}},
	"close-grip bench press":  {{Name: "Triceps Pushdown", Volume: "3x10-12"}, {Name: "Dips", Volume: "3x8-12"}},
	"deadlift":                {{Name: "Romanian Deadlift", Volume: "3x8"}, {Name: "Kettlebell Swing", Volume: "4x15"}, {Name: "Glute Bridge", Volume: "4x15-20"}},
	"deficit deadlift":        {{Name: "Romanian Deadlift", Volume: "3x8"}, {Name: "Glute Bridge", Volume: "4x15-20"}},
	"romanian deadlift":       {{Name: "Kettlebell Swing", Volume: "4x15"}, {Name: "Glute Bridge", Volume: "4x15-20"}},
	"overhead press":          {{Name: "Dumbbell Shoulder Press"}, {Name: "Pike Push-ups", Volume: "3x8-12"}},
	"dumbbell shoulder press": {{Name: "Pike Push-ups", Volume: "3x8-12"}},
	"barbell row":             {{Name: "Dumbbell Row"}, {Name: "Seated Cable Row"}, {Name: "Inverted Row", Volume: "3x10-12"}},
	"dumbbell row":            {{Name: "Seated Cable Row"}, {Name: "Inverted Row", Volume: "3x10-12"}},
	"pull-ups":                {{Name: "Lat Pulldown", Volume: "3x10-12"}, {Name: "Inverted Row", Volume: "3x10-12"}},
	"chin-ups":                {{Name: "Lat Pulldown", Volume: "3x10-12"}, {Name: "Inverted Row", Volume: "3x10-12"}},
	"lat pulldown":            {{Name: "Pull-ups", Volume: "3x6-8"}, {Name: "Inverted Row", Volume: "3x10-12"}},
	"seated cable row":        {{Name: "Dumbbell Row"}, {Name: "Inverted Row", Volume: "3x10-12"}},
	"hip thrust":              {{Name: "Glute Bridge"}},
	"leg press":               {{Name: "Goblet Squat"}, {Name: "Bodyweight Squat", Volume: "4x15-20"}},
	"leg extension":           {{Name: "Bulgarian Split Squat"}, {Name: "Reverse Lunges", Volume: "3x12"}},
	"leg curl":                {{Name: "Romanian Deadlift"}, {Name: "Glute Bridge", Volume: "3x15"}},
	"walking lunges":          {{Name: "Reverse Lunges"}},
	"bulgarian split squat":   {{Name: "Reverse Lunges"}},
	"goblet squat":            {{Name: "Bodyweight Squat", Volume: "4x15-20"}},
	"dumbbell bench press":    {{Name: "Push-ups", Volume: "4x12-15"}},
	"incline dumbbell press":  {{Name: "Push-ups", Volume: "3x12-15"}},
	"cable fly":               {{Name: "Push-ups", Volume: "3x15"}},
	"triceps pushdown":        {{Name: "Dips", Volume: "3x8-12"}},
	"biceps curl":             {{Name: "Hammer Curl"}},
	"face pull":               {{Name: "Band Pull-apart"}},
	"calf raise":              {{Name: "Single-leg Calf Raise", Volume: "3x15"}},
	"back extension":          {{Name: "Superman", Volume: "3x15"}},
	"hanging leg raise":       {{Name: "Lying Leg Raise"}},
	"kettlebell swing":        {{Name: "Glute Bridge", Volume: "4x15-20"}},
}

// contraindications упражнения, противопоказанные при травме зоны
var contraindications = map[string][]string{
	InjuryKnee: {
		"squat", "front squat", "goblet squat", "bodyweight squat", "leg press", "leg extension",
		"walking lunges", "reverse lunges", "bulgarian split squat",
	},
	InjuryBack: {
		"squat", "front squat", "deadlift", "deficit deadlift", "romanian deadlift",
		"barbell row", "back extension", "kettlebell swing", "superman",
	},
	InjuryShoulder: {
		"overhead press", "dumbbell shoulder press", "pike push-ups", "dips", "lateral raise",
		"pause bench press",
	},
}
