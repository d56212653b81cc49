package resources

// Attachment is the outcome of a successful attach run
type Attachment struct {
	Snapshot            Snapshot
	Volume              Volume
	Instance            Instance
	DeviceKey           string
	DeviceValue         string
	DeleteOnTermination bool
}
