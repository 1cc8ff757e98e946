// Package gate decides, once per build invocation, whether release signing can
// be configured.
//
// The decision has three outcomes:
//
//  1. Credentials file absent, no release task requested: Skipped, with an
//     informational notice.
//  2. Credentials file absent, a release task requested: ErrMissingCredentialsFile.
//  3. Credentials file present: it is parsed and validated regardless of the
//     requested tasks. A missing key fails with signing.ErrMissingCredentialField;
//     otherwise the outcome is Configured and the decision carries the credentials.
package gate
