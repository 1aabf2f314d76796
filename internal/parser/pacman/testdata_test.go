package pacman

const fullPackage = `Name            : pkg
Version         : 2.2.1-1
Description     : Some package description
Architecture    : x86_64
URL             : https://example.com/pkg
Licenses        : Apache
Groups          : None
Provides        : None
Depends On      : otherdependency1
Optional Deps   : dep: my description [installed]
                : dep2: my other description
Required By     : otherdependency2
Optional For    : None
Conflicts With  : None
Replaces        : None
Installed Size  : 2137.69 KiB
Packager        : My Name <user@example.com>
Build Date      : Mon 01 Jan 1970 00:00:00 AM CET
Install Date    : Mon 01 Jan 1970 00:00:00 PM CET
Install Reason  : Installed as a dependency for another package
Install Script  : No
Validated By    : Signature`

const twoPackages = `Name            : pkg
Version         : 2.2.1-1
Description     : Some package description
Architecture    : x86_64
URL             : https://example.com/pkg
Licenses        : Apache MIT
Groups          : None
Provides        : None
Depends On      : otherdependency1
Optional Deps   : None
Required By     : otherdependency2
Optional For    : None
Conflicts With  : None
Replaces        : None
Installed Size  : 2137.69 KiB
Packager        : My Name <user@example.com>
Build Date      : Mon 01 Jan 1970 00:00:00 AM CET
Install Date    : Mon 01 Jan 1970 00:00:00 PM CET
Install Reason  : Installed as a dependency for another package
Install Script  : No
Validated By    : Signature

Name            : pkg2
Version         : 2.2.1-1
Description     : Some package description
Architecture    : x86_64
URL             : https://example.com/pkg
Licenses        : GPL
Groups          : None
Provides        : None
Depends On      : otherdependency1
Optional Deps   : somedep1: somedep1 description [installed]
                  somedep2: somedep2 description
Required By     : otherdependency2
Optional For    : None
Conflicts With  : None
Replaces        : None
Installed Size  : 2137.69 KiB
Packager        : My Name <user@example.com>
Build Date      : Mon 01 Jan 1970 00:00:00 AM CET
Install Date    : Mon 01 Jan 1970 00:00:00 PM CET
Install Reason  : Explicitly installed
Install Script  : No
Validated By    : Signature`

func strPtr(s string) *string {
	return &s
}
