package internal

import "fmt"

// SampleExportLines returns a small export with 11 metadata lines, a blank
// header column and a non-numeric Gear channel
func SampleExportLines() []string {
	return []string{
		`"Format","MoTeC CSV File",,,"Workbook","Untitled"`,
		`"Venue","Daytona Road",,,"Worksheet","Stint 1"`,
		`"Vehicle","Porsche 718 GT4",,,"Vehicle Desc",""`,
		`"Driver","Test Driver",,,"Engine ID",""`,
		`"Device","iRacing"`,
		`"Comment",""`,
		`"Log Date","06/19/2025",,,"Origin Time","0","s"`,
		`"Log Time","14:02:11",,,"Start Time","0","s"`,
		`"Sample Rate","10","Hz",,"End Time","0.2","s"`,
		`"Duration","0.2","s",,"Start Distance","0","m"`,
		`"Range","entire outing",,,"End Distance","10","m"`,
		`"Time","Speed","","RPM","Gear"`,
		`"s","kph","","rpm",""`,
		`0.0,120.5,x,6500,3`,
		`0.1,121.0,y,6600,3`,
		`0.2,,z,6700,N`,
	}
}

// CreateTestDocument parses SampleExportLines
func CreateTestDocument() *Document {
	doc, err := Parse("sample.csv", SampleExportLines(), DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("sample export failed to parse: %v", err))
	}
	return doc
}
