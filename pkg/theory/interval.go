package theory

var degreeLabels = [12]string{
	"R", "b9", "9", "m3", "M3", "11", "#11", "5", "b13", "13", "m7", "M7",
}

// Label names target as a scale degree above root
func Label(root, target PitchClass) string {
	return degreeLabels[Mod(int(target)-int(root))]
}
