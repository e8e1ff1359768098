package ui

// GetStyles returns the CSS for the console chrome
func GetStyles() string {
	return `
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background: #f6f7f9;
            min-height: 100vh;
            margin: 0;
        }
        .admin-shell {
            display: flex;
            height: 100vh;
            overflow: hidden;
        }
        .admin-main {
            flex: 1 1 auto;
            overflow-y: auto;
            position: relative;
        }
        .brand-logo {
            height: 28px;
            width: 28px;
            object-fit: contain;
            flex-shrink: 0;
        }
        .brand-name {
            font-weight: 600;
            font-size: 1.1rem;
        }
        .brand-powered {
            margin-left: 36px;
        }
        .app-sidebar {
            width: 15rem;
            flex-shrink: 0;
            background: #eef0f3;
            border-right: 1px solid #dde1e6;
            display: flex;
            flex-direction: column;
            height: 100vh;
            transition: width 0.2s;
        }
        .app-sidebar.folded {
            width: 4rem;
        }
        .app-sidebar.folded .sidebar-label,
        .app-sidebar.folded .sidebar-section-title,
        .app-sidebar.folded .sidebar-footer {
            display: none;
        }
        .sidebar-top {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 1rem 0.75rem;
        }
        .app-sidebar.folded .sidebar-top {
            flex-direction: column;
            gap: 0.5rem;
        }
        .sidebar-body {
            flex: 1 1 auto;
            overflow-y: auto;
            padding: 0 0.5rem;
        }
        .sidebar-section-title {
            font-size: 0.75rem;
            text-transform: uppercase;
            color: #6c757d;
            padding: 0.75rem 0.5rem 0.25rem;
        }
        .sidebar-tab {
            display: flex;
            align-items: center;
            gap: 0.6rem;
            padding: 0.4rem 0.5rem;
            border-radius: 8px;
            color: #343a40;
            text-decoration: none;
            position: relative;
        }
        .sidebar-tab:hover {
            background: #e2e6ea;
        }
        .sidebar-tab.active {
            background: #dbe4ff;
            font-weight: 600;
        }
        .sidebar-tab .error-dot {
            width: 8px;
            height: 8px;
            border-radius: 50%;
            background: #dc3545;
            margin-left: auto;
        }
        .sidebar-footer {
            padding: 0.75rem;
            font-size: 0.75rem;
            color: #6c757d;
        }
        .fold-toggle button {
            border: none;
            background: transparent;
            font-size: 1.1rem;
            color: #495057;
        }
        .sidebar-overlay {
            position: fixed;
            top: 0;
            bottom: 0;
            left: 0;
            z-index: 1050;
            transform: translateX(0);
            transition: transform 0.2s;
        }
        .sidebar-overlay.offscreen {
            transform: translateX(-100%);
        }
        .sidebar-hitbox {
            position: fixed;
            inset: 0;
            z-index: 1040;
            background: rgba(0,0,0,0.3);
            backdrop-filter: blur(2px);
            border: none;
            width: 100%;
        }
        .mobile-unfold {
            padding: 0.5rem 1rem;
        }
        .payment-banner {
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            z-index: 1060;
            background: #fff3cd;
            color: #664d03;
            text-align: center;
            padding: 0.5rem;
            border-bottom: 1px solid #ffe69c;
        }
        .page-scroll {
            height: 100%;
            width: 100%;
            overflow-y: auto;
        }
        .page-column {
            max-width: 50rem;
            margin: 0 auto;
            padding: 2rem 1rem;
        }
        .card {
            border: none;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.08);
        }
        .card-header {
            background: #fff;
            font-weight: 600;
        }
        .step-list {
            position: relative;
            padding: 0.5rem 0.75rem;
        }
        .step-line {
            position: absolute;
            left: 1.15rem;
            top: 1rem;
            height: 85%;
            width: 2px;
            background: #ced4da;
        }
        .step {
            display: flex;
            align-items: center;
            margin-bottom: 1.5rem;
            position: relative;
            text-decoration: none;
            color: #6c757d;
        }
        .step.reached {
            color: #212529;
        }
        .step.disabled {
            cursor: not-allowed;
        }
        .step-dot {
            width: 14px;
            height: 14px;
            border-radius: 50%;
            background: #ced4da;
            margin-right: 1rem;
            display: flex;
            align-items: center;
            justify-content: center;
            z-index: 1;
        }
        .step.allowed .step-dot {
            background: #0d6efd;
        }
        .step-dot .current {
            width: 8px;
            height: 8px;
            border-radius: 50%;
            background: #fff;
        }
        .filter-button {
            display: inline-flex;
            align-items: center;
            gap: 0.25rem;
            padding: 0.5rem;
            border-radius: 12px;
            border: none;
            background: #eef0f3;
            color: #495057;
        }
        .filter-button.active {
            background: #212529;
            color: #fff;
        }
        .filter-button.transient {
            background: #dee2e6;
        }
        .filter-button.transient .bi-chevron-down {
            transform: rotate(-180deg);
        }
        .filter-button .clear {
            color: inherit;
            text-decoration: none;
        }
        .web-result-icon {
            object-fit: contain;
            border-radius: 50%;
            background: transparent;
        }
    `
}
