package output

// SchemaVersion is the version of the NDJSON report schema.
// Increment it on breaking changes to ReportOutput or ErrorOutput.
const SchemaVersion = 1
