package render

import "github.com/jonathan/resume-wizard/internal/types"

func init() {
	register(types.TemplateCanva, canvaMarkup)
}

// canvaMarkup is the contemporary two-column layout: dark header band, teal
// accents, sidebar on the right with skills, languages, and certifications.
const canvaMarkup = `<style>
.canva { font-family: Helvetica, Arial, sans-serif; font-size: 10px; color: #1a1a1a; }
.canva .band { background: #1a1a1a; color: #fff; padding: 12px 14px; margin-bottom: 10px; }
.canva .name { font-size: 20px; font-weight: bold; }
.canva .headline { font-size: 11px; color: #0d9488; margin-top: 2px; }
.canva .contact { font-size: 9px; color: #d4d4d4; margin-top: 4px; }
.canva .columns { display: flex; gap: 14px; }
.canva .main { width: 66%; }
.canva .sidebar { width: 34%; }
.canva h2 { font-size: 11px; font-weight: bold; text-transform: uppercase; color: #0d9488; margin: 8px 0 4px; }
.canva .job-title { font-weight: bold; }
.canva .company { color: #333; }
.canva .dates { font-size: 9px; color: #777; }
.canva ul { margin: 3px 0 0 0; padding: 0; list-style: none; }
.canva li { margin-bottom: 2px; color: #333; }
.canva li::before { content: "\203A"; color: #0d9488; font-weight: bold; margin-right: 5px; }
.canva .pill { display: inline-block; background: #f0fdfa; color: #0d9488; border: 1px solid #0d9488; border-radius: 8px; padding: 1px 6px; margin: 0 3px 3px 0; font-size: 9px; }
.canva .side-entry { margin-bottom: 4px; color: #333; }
</style>
<div class="canva">
  <div class="band">
    <div class="name">{{.Name}}</div>
    {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
    <div class="contact">{{.ContactLine}}{{if .LinkedIn}} | {{.LinkedIn}}{{end}}</div>
  </div>
  <div class="columns">
    <div class="main">
      {{if .Summary}}
      <section class="summary">
        <h2>About Me</h2>
        <p>{{.Summary}}</p>
      </section>
      {{end}}
      {{if .Experience}}
      <section class="experience">
        <h2>Experience</h2>
        {{range .Experience}}
        <div class="entry">
          <div class="job-title">{{.Title}}</div>
          <div class="company">{{.Company}} <span class="dates">{{.Dates}}</span></div>
          {{if .Bullets}}
          <ul>
            {{range .Bullets}}<li>{{.}}</li>
            {{end}}
          </ul>
          {{end}}
        </div>
        {{end}}
      </section>
      {{end}}
      {{if .Projects}}
      <section class="projects">
        <h2>Projects</h2>
        {{range .Projects}}
        <div class="entry">
          <div class="job-title">{{.Name}}</div>
          <p>{{.Description}}{{if .URL}} ({{.URL}}){{end}}</p>
        </div>
        {{end}}
      </section>
      {{end}}
    </div>
    <div class="sidebar">
      {{if .Skills}}
      <section class="skills">
        <h2>Skills</h2>
        {{range .Skills}}<span class="pill">{{.}}</span>{{end}}
      </section>
      {{end}}
      {{if .Education}}
      <section class="education">
        <h2>Education</h2>
        {{range .Education}}
        <div class="side-entry">
          <div class="job-title">{{.Degree}}</div>
          <div>{{.Institution}}</div>
          <div class="dates">{{.Dates}}</div>
        </div>
        {{end}}
      </section>
      {{end}}
      {{if .Certifications}}
      <section class="certifications">
        <h2>Certifications</h2>
        {{range .Certifications}}<div class="side-entry">{{.}}</div>
        {{end}}
      </section>
      {{end}}
      {{if .Languages}}
      <section class="languages">
        <h2>Languages</h2>
        {{range .Languages}}<div class="side-entry">{{.}}</div>
        {{end}}
      </section>
      {{end}}
    </div>
  </div>
</div>`
