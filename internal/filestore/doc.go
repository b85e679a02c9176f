// Package filestore organises property documents and media on the agency
// NAS. Every property owns one remote folder whose name is derived
// deterministically from the property address, partitioned into four fixed
// category subfolders (Bilder, Objektunterlagen, Sensible Daten,
// Vertragsunterlagen).
//
// The [Gateway] interface abstracts the transport; [WebDAVGateway] and
// [FTPGateway] are the two interchangeable backends. Every gateway call
// opens a fresh transport session and closes it before returning. All
// provider errors are normalised into the small taxonomy defined in
// errors.go before they leave this package.
package filestore
