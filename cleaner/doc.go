/*
Package cleaner tracks mocks that received handlers so a test harness can
purge all recorded behavior in one sweep between test cases.

The dispatcher registers a mock with its tracker on every handler assignment;
the tracker deduplicates, so a mock is purged once no matter how often it was
configured. At the end of a test case the harness calls Cleanup, which clears
every registered mock's handler slots and forgets them, leaving the tracker
ready for the next case.

Mocks created without an explicit tracker share the process-wide Default
tracker. Tests that need isolation construct their own with New.
*/
package cleaner
