// Package creds reads the AFS service ticket out of a Kerberos
// credential cache.
//
// # Overview
//
// The tool never runs the AS or TGS exchanges itself - kinit and the
// first kvno/aklog of the day have already populated the MIT-format
// credential cache. This package resolves the cache the same way
// libkrb5 does (KRB5CCNAME, then /tmp/krb5cc_<uid>), parses it with
// gokrb5, and picks out the credential for afs/<cell>@<REALM>: its
// encryption type, session key, raw ticket, and end time are everything
// the rxkad reduction and the keyring payload need.
//
// Common cache locations:
//   - /tmp/krb5cc_<uid> (default)
//   - Specified by KRB5CCNAME environment variable (FILE: prefix optional)
package creds
